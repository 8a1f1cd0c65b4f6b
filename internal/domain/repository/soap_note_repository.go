package repository

import (
	"context"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

type SOAPNoteRepository interface {
	// CreateAndComplete appends the note and advances the patient from
	// consulting to completed in a single transaction. It returns false
	// without inserting anything when the patient was not consulting. The
	// note is never left recorded against a still-consulting patient, nor
	// the patient completed without a note.
	CreateAndComplete(ctx context.Context, note *entity.SOAPNote) (bool, error)

	// FindByPatientID returns the patient's notes ordered by consultation
	// date ascending.
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.SOAPNote, error)
}
