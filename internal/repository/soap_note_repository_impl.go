package repository

import (
	"context"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type soapNoteRepository struct {
	db *gorm.DB
}

func NewSOAPNoteRepository(db *gorm.DB) domainRepo.SOAPNoteRepository {
	return &soapNoteRepository{db: db}
}

// CreateAndComplete couples note insertion with visit closure. The
// conditional update runs first and takes the row lock; a zero row count
// means the patient was not consulting, so the transaction rolls back with
// nothing inserted.
func (r *soapNoteRepository) CreateAndComplete(ctx context.Context, note *entity.SOAPNote) (bool, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return false, tx.Error
	}
	defer tx.Rollback()

	result := tx.Model(&entity.Patient{}).
		Where("id = ? AND status = ?", note.PatientID, entity.PatientStatusConsulting).
		Update("status", entity.PatientStatusCompleted)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	if err := tx.Create(note).Error; err != nil {
		return false, err
	}

	if err := tx.Commit().Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *soapNoteRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.SOAPNote, error) {
	var notes []entity.SOAPNote
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("consultation_date ASC").
		Find(&notes).Error
	return notes, err
}
