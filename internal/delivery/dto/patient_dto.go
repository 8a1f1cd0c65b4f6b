package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required"`
	DateOfBirth      string `json:"date_of_birth" validate:"required"`
	Gender           string `json:"gender"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergency_contact" validate:"required"`
	MedicalHistory   string `json:"medical_history"`
}

type AssignDoctorRequest struct {
	DoctorID uuid.UUID `json:"doctor_id" validate:"required"`
}

// Response DTOs

type PatientResponse struct {
	ID               uuid.UUID  `json:"id"`
	PatientID        string     `json:"patient_id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	DateOfBirth      string     `json:"date_of_birth"`
	Gender           string     `json:"gender,omitempty"`
	Address          string     `json:"address,omitempty"`
	EmergencyContact string     `json:"emergency_contact"`
	MedicalHistory   string     `json:"medical_history,omitempty"`
	Status           string     `json:"status"`
	AssignedDoctorID *uuid.UUID `json:"assigned_doctor_id,omitempty"`
	AssignedDoctor   string     `json:"assigned_doctor,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []*PatientResponse `json:"patients"`
	Total    int                `json:"total"`
}
