package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-management-api/internal/authz"
	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrPatientNotConsulting = errors.New("patient is not in consultation")

type SOAPNoteUsecase interface {
	CreateNote(ctx context.Context, req *dto.CreateSOAPNoteRequest) (*dto.SOAPNoteResponse, error)
	ListNotes(ctx context.Context, patientID uuid.UUID) (*dto.SOAPNoteListResponse, error)
}

type soapNoteUsecase struct {
	log          *logrus.Logger
	noteRepo     repository.SOAPNoteRepository
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewSOAPNoteUsecase(
	log *logrus.Logger,
	noteRepo repository.SOAPNoteRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) SOAPNoteUsecase {
	return &soapNoteUsecase{
		log:          log,
		noteRepo:     noteRepo,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

// CreateNote records the consultation outcome and closes the visit. Only the
// assigned doctor may write it, only while the patient is consulting, and
// the note insert plus the completed transition land together or not at all.
// One note per visit: the completion makes a second note impossible.
func (u *soapNoteUsecase) CreateNote(ctx context.Context, req *dto.CreateSOAPNoteRequest) (*dto.SOAPNoteResponse, error) {
	actor, ok := authz.ActorFromContext(ctx)
	if !ok {
		return nil, ErrInvalidToken
	}
	if err := authz.Authorize(actor, authz.OpCreateSOAPNote); err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if !patient.IsAssignedTo(actor.ID) {
		return nil, authz.ErrForbidden
	}

	note := &entity.SOAPNote{
		PatientID:        req.PatientID,
		DoctorID:         actor.ID,
		Subjective:       req.Subjective,
		Objective:        req.Objective,
		Assessment:       req.Assessment,
		Plan:             req.Plan,
		ConsultationDate: time.Now().UTC(),
	}

	completed, err := u.noteRepo.CreateAndComplete(ctx, note)
	if err != nil {
		u.log.Warnf("Failed to create SOAP note for patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if !completed {
		return nil, ErrPatientNotConsulting
	}

	u.auditService.Record(ctx, &actor.ID, entity.AuditActionSOAPNoteCreate, entity.JSON{
		"patient_id": req.PatientID.String(),
		"note_id":    note.ID.String(),
	})

	u.log.Infof("SOAP note recorded, visit completed: patient=%s, doctor=%s", req.PatientID, actor.ID)
	return converter.SOAPNoteToResponse(note), nil
}

// ListNotes returns a patient's notes ordered by consultation date. A doctor
// reads notes for patients they are or were assigned to, a patient only
// their own record. Front desk and super admin hold no note-read grant.
func (u *soapNoteUsecase) ListNotes(ctx context.Context, patientID uuid.UUID) (*dto.SOAPNoteListResponse, error) {
	actor, ok := authz.ActorFromContext(ctx)
	if !ok {
		return nil, ErrInvalidToken
	}
	if err := authz.Authorize(actor, authz.OpReadSOAPNotes); err != nil {
		return nil, err
	}

	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	switch actor.Role {
	case entity.RoleDoctor:
		if !patient.IsAssignedTo(actor.ID) {
			return nil, authz.ErrForbidden
		}
	case entity.RolePatient:
		if patient.Email != actor.Email {
			return nil, authz.ErrForbidden
		}
	default:
		return nil, authz.ErrForbidden
	}

	notes, err := u.noteRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to list SOAP notes for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.SOAPNoteListResponse{
		Notes: converter.SOAPNotesToResponses(notes),
		Total: len(notes),
	}, nil
}
