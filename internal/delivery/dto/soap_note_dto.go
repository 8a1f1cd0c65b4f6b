package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateSOAPNoteRequest struct {
	PatientID  uuid.UUID `json:"patient_id" validate:"required"`
	Subjective string    `json:"subjective" validate:"required"`
	Objective  string    `json:"objective" validate:"required"`
	Assessment string    `json:"assessment" validate:"required"`
	Plan       string    `json:"plan" validate:"required"`
}

// Response DTOs

type SOAPNoteResponse struct {
	ID               uuid.UUID `json:"id"`
	PatientID        uuid.UUID `json:"patient_id"`
	DoctorID         uuid.UUID `json:"doctor_id"`
	Subjective       string    `json:"subjective"`
	Objective        string    `json:"objective"`
	Assessment       string    `json:"assessment"`
	Plan             string    `json:"plan"`
	ConsultationDate time.Time `json:"consultation_date"`
}

type SOAPNoteListResponse struct {
	Notes []*SOAPNoteResponse `json:"notes"`
	Total int                 `json:"total"`
}
