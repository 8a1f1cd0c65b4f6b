package repository

import (
	"context"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	FindAll(ctx context.Context) ([]entity.Patient, error)
	FindByAssignedDoctor(ctx context.Context, doctorID uuid.UUID) ([]entity.Patient, error)
	FindByEmail(ctx context.Context, email string) (*entity.Patient, error)

	// AssignDoctor moves a patient from registered to consulting and binds
	// the doctor, as one conditional update. It returns false when the
	// patient was not in registered state, in which case nothing changed.
	// Two racing assignments serialize on the row, exactly one observes
	// registered and wins.
	AssignDoctor(ctx context.Context, patientID, doctorID uuid.UUID) (bool, error)

	// Counts aggregates clinic-wide patient totals from one snapshot.
	Counts(ctx context.Context) (*entity.PatientCounts, error)

	// CountsByDoctor aggregates totals over one doctor's assignments.
	CountsByDoctor(ctx context.Context, doctorID uuid.UUID) (*entity.DoctorCounts, error)
}
