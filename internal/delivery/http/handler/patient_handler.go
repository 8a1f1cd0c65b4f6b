package handler

import (
	"encoding/json"
	"net/http"

	"clinic-management-api/internal/authz"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
	"clinic-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// CreatePatient registers a new patient record (front desk)
func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.CreatePatient(r.Context(), &req)
	if err != nil {
		switch err {
		case authz.ErrForbidden:
			response.Forbidden(w, "Not authorized to create patients")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", patient)
}

// ListPatients returns patient records scoped to the caller's role
func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.ListPatients(r.Context())
	if err != nil {
		switch err {
		case authz.ErrForbidden:
			response.Forbidden(w, "Not authorized to list patients")
		default:
			response.InternalServerError(w, "Failed to list patients")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

// GetPatient returns one patient record, subject to scope checks
func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient id", nil)
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case authz.ErrForbidden:
			response.Forbidden(w, "Not authorized to view this patient")
		default:
			response.InternalServerError(w, "Failed to get patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

// AssignDoctor starts the consultation for a registered patient (front desk)
func (h *PatientHandler) AssignDoctor(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient id", nil)
		return
	}

	var req dto.AssignDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.AssignDoctor(r.Context(), patientID, &req)
	if err != nil {
		switch err {
		case authz.ErrForbidden:
			response.Forbidden(w, "Not authorized to assign doctors")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrUnknownDoctor:
			response.Error(w, http.StatusBadRequest, "Doctor does not reference an active doctor user", nil)
		case usecase.ErrInvalidTransition:
			response.Error(w, http.StatusConflict, "Patient is not in registered state", nil)
		default:
			response.InternalServerError(w, "Failed to assign doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor assigned successfully", patient)
}
