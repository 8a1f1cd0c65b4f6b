package entity

import (
	"time"

	"github.com/google/uuid"
)

// SOAPNote is one consultation record. Notes are append-only: created by the
// assigned doctor while the patient is consulting, never updated or deleted.
type SOAPNote struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID        uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID         uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Subjective       string    `gorm:"type:text;not null" json:"subjective"`
	Objective        string    `gorm:"type:text;not null" json:"objective"`
	Assessment       string    `gorm:"type:text;not null" json:"assessment"`
	Plan             string    `gorm:"type:text;not null" json:"plan"`
	ConsultationDate time.Time `gorm:"not null;index" json:"consultation_date"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *User    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (SOAPNote) TableName() string {
	return "soap_notes"
}
