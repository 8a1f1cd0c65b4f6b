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

type SOAPNoteHandler struct {
	soapNoteUsecase usecase.SOAPNoteUsecase
	validator       *validator.CustomValidator
}

func NewSOAPNoteHandler(soapNoteUsecase usecase.SOAPNoteUsecase, validator *validator.CustomValidator) *SOAPNoteHandler {
	return &SOAPNoteHandler{
		soapNoteUsecase: soapNoteUsecase,
		validator:       validator,
	}
}

// CreateNote records a SOAP note and completes the visit (assigned doctor)
func (h *SOAPNoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSOAPNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	note, err := h.soapNoteUsecase.CreateNote(r.Context(), &req)
	if err != nil {
		switch err {
		case authz.ErrForbidden:
			response.Forbidden(w, "Only the assigned doctor can record a note")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrPatientNotConsulting:
			response.Error(w, http.StatusConflict, "Patient is not in consultation", nil)
		default:
			response.InternalServerError(w, "Failed to create SOAP note")
		}
		return
	}

	response.Success(w, http.StatusCreated, "SOAP note recorded, visit completed", note)
}

// ListNotes returns a patient's notes ordered by consultation date
func (h *SOAPNoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient id", nil)
		return
	}

	notes, err := h.soapNoteUsecase.ListNotes(r.Context(), patientID)
	if err != nil {
		switch err {
		case authz.ErrForbidden:
			response.Forbidden(w, "Not authorized to read these notes")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to list SOAP notes")
		}
		return
	}

	response.Success(w, http.StatusOK, "SOAP notes retrieved successfully", notes)
}
