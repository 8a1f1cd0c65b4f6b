package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientStatus is the visit lifecycle state. Transitions only move forward:
// registered -> consulting -> completed. Completed is terminal.
type PatientStatus string

const (
	PatientStatusRegistered PatientStatus = "registered"
	PatientStatusConsulting PatientStatus = "consulting"
	PatientStatusCompleted  PatientStatus = "completed"
)

// Patient is the clinical record. Records are never deleted (clinical
// retention) and status is mutated only through the workflow operations.
type Patient struct {
	ID               uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID        string        `gorm:"type:varchar(20);uniqueIndex;not null" json:"patient_id"`
	Name             string        `gorm:"type:varchar(255);not null" json:"name"`
	Email            string        `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone            string        `gorm:"type:varchar(30);not null" json:"phone"`
	DateOfBirth      time.Time     `gorm:"type:date;not null" json:"date_of_birth"`
	Gender           string        `gorm:"type:varchar(10)" json:"gender,omitempty"`
	Address          string        `gorm:"type:text" json:"address,omitempty"`
	EmergencyContact string        `gorm:"type:varchar(255);not null" json:"emergency_contact"`
	MedicalHistory   string        `gorm:"type:text" json:"medical_history,omitempty"`
	Status           PatientStatus `gorm:"type:varchar(20);not null;default:'registered';index" json:"status"`
	AssignedDoctorID *uuid.UUID    `gorm:"type:uuid;index" json:"assigned_doctor_id,omitempty"`
	CreatedBy        uuid.UUID     `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt        time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	AssignedDoctor *User `gorm:"foreignKey:AssignedDoctorID" json:"assigned_doctor,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// IsRegistered checks if the patient is waiting for a doctor assignment.
func (p *Patient) IsRegistered() bool {
	return p.Status == PatientStatusRegistered
}

// IsConsulting checks if the patient has an active consultation.
func (p *Patient) IsConsulting() bool {
	return p.Status == PatientStatusConsulting
}

// IsCompleted checks if the visit is closed.
func (p *Patient) IsCompleted() bool {
	return p.Status == PatientStatusCompleted
}

// IsAssignedTo reports whether doctorID holds the consultation for this
// patient.
func (p *Patient) IsAssignedTo(doctorID uuid.UUID) bool {
	return p.AssignedDoctorID != nil && *p.AssignedDoctorID == doctorID
}

// CanTransitionTo enforces the forward-only lifecycle. No skipping and no
// reverting, completed is terminal.
func (p *Patient) CanTransitionTo(next PatientStatus) bool {
	switch p.Status {
	case PatientStatusRegistered:
		return next == PatientStatusConsulting
	case PatientStatusConsulting:
		return next == PatientStatusCompleted
	default:
		return false
	}
}
