package repository

import (
	"context"
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Preload("AssignedDoctor").Where("id = ?", id).First(&patient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := r.db.WithContext(ctx).Preload("AssignedDoctor").Order("created_at DESC").Find(&patients).Error
	return patients, err
}

func (r *patientRepository) FindByAssignedDoctor(ctx context.Context, doctorID uuid.UUID) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := r.db.WithContext(ctx).
		Where("assigned_doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&patients).Error
	return patients, err
}

func (r *patientRepository) FindByEmail(ctx context.Context, email string) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Preload("AssignedDoctor").Where("email = ?", email).First(&patient).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// AssignDoctor is the only transition into consulting. The status predicate
// in the WHERE clause makes concurrent assignments against the same patient
// mutually exclusive: the row lock serializes the two updates and the loser
// no longer matches.
func (r *patientRepository) AssignDoctor(ctx context.Context, patientID, doctorID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Patient{}).
		Where("id = ? AND status = ?", patientID, entity.PatientStatusRegistered).
		Updates(map[string]interface{}{
			"status":             entity.PatientStatusConsulting,
			"assigned_doctor_id": doctorID,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *patientRepository) Counts(ctx context.Context) (*entity.PatientCounts, error) {
	var counts entity.PatientCounts
	// One statement so all four numbers describe the same snapshot.
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*)                                          AS total,
			COUNT(*) FILTER (WHERE status = 'registered')     AS registered,
			COUNT(*) FILTER (WHERE status = 'consulting')     AS consulting,
			COUNT(*) FILTER (WHERE status = 'completed')      AS completed
		FROM patients`).Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return &counts, nil
}

func (r *patientRepository) CountsByDoctor(ctx context.Context, doctorID uuid.UUID) (*entity.DoctorCounts, error) {
	var counts entity.DoctorCounts
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*)                                          AS assigned,
			COUNT(*) FILTER (WHERE status = 'consulting')     AS consulting
		FROM patients
		WHERE assigned_doctor_id = ?`, doctorID).Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return &counts, nil
}
