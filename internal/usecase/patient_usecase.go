package usecase

import (
	"context"
	"errors"
	"strings"
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

var (
	ErrPatientNotFound   = errors.New("patient not found")
	ErrInvalidTransition = errors.New("invalid patient status transition")
	ErrUnknownDoctor     = errors.New("doctor does not reference an active doctor user")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	ListPatients(ctx context.Context) (*dto.PatientListResponse, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	AssignDoctor(ctx context.Context, patientID uuid.UUID, req *dto.AssignDoctorRequest) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		log:          log,
		patientRepo:  patientRepo,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

// CreatePatient registers a new clinical record. Every record starts in
// registered with no doctor bound.
func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	actor, ok := authz.ActorFromContext(ctx)
	if !ok {
		return nil, ErrInvalidToken
	}
	if err := authz.Authorize(actor, authz.OpCreatePatient); err != nil {
		return nil, err
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	patient := &entity.Patient{
		PatientID:        generatePatientID(),
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		DateOfBirth:      dob,
		Gender:           req.Gender,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		MedicalHistory:   req.MedicalHistory,
		Status:           entity.PatientStatusRegistered,
		CreatedBy:        actor.ID,
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, &actor.ID, entity.AuditActionPatientCreate, entity.JSON{
		"patient_id": patient.PatientID,
		"name":       patient.Name,
	})

	u.log.Infof("Patient created: id=%s, patient_id=%s", patient.ID, patient.PatientID)
	return converter.PatientToResponse(patient), nil
}

// ListPatients narrows the result set to the caller's grant: staff see all
// records, a doctor sees only own assignments, a patient only their own
// record. Filtering happens here, never client side.
func (u *patientUsecase) ListPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	actor, ok := authz.ActorFromContext(ctx)
	if !ok {
		return nil, ErrInvalidToken
	}

	var patients []entity.Patient
	var err error

	switch actor.Role {
	case entity.RoleSuperAdmin, entity.RoleFrontDesk:
		if err := authz.Authorize(actor, authz.OpReadAllPatients); err != nil {
			return nil, err
		}
		patients, err = u.patientRepo.FindAll(ctx)
	case entity.RoleDoctor:
		if err := authz.Authorize(actor, authz.OpReadAllPatients); err != nil {
			return nil, err
		}
		patients, err = u.patientRepo.FindByAssignedDoctor(ctx, actor.ID)
	case entity.RolePatient:
		if err := authz.Authorize(actor, authz.OpReadOwnRecord); err != nil {
			return nil, err
		}
		var own *entity.Patient
		own, err = u.patientRepo.FindByEmail(ctx, actor.Email)
		if own != nil {
			patients = []entity.Patient{*own}
		}
	default:
		return nil, authz.ErrForbidden
	}

	if err != nil {
		u.log.Warnf("Failed to list patients for %s: %+v", actor.ID, err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	actor, ok := authz.ActorFromContext(ctx)
	if !ok {
		return nil, ErrInvalidToken
	}

	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	switch actor.Role {
	case entity.RoleSuperAdmin, entity.RoleFrontDesk:
		if err := authz.Authorize(actor, authz.OpReadAllPatients); err != nil {
			return nil, err
		}
	case entity.RoleDoctor:
		if err := authz.Authorize(actor, authz.OpReadAllPatients); err != nil {
			return nil, err
		}
		if !patient.IsAssignedTo(actor.ID) {
			return nil, authz.ErrForbidden
		}
	case entity.RolePatient:
		if err := authz.Authorize(actor, authz.OpReadOwnRecord); err != nil {
			return nil, err
		}
		if patient.Email != actor.Email {
			return nil, authz.ErrForbidden
		}
	default:
		return nil, authz.ErrForbidden
	}

	return converter.PatientToResponse(patient), nil
}

// AssignDoctor moves a registered patient into consultation with a doctor.
// This is the only transition into consulting and the doctor binding is
// written exactly once.
func (u *patientUsecase) AssignDoctor(ctx context.Context, patientID uuid.UUID, req *dto.AssignDoctorRequest) (*dto.PatientResponse, error) {
	actor, ok := authz.ActorFromContext(ctx)
	if !ok {
		return nil, ErrInvalidToken
	}
	if err := authz.Authorize(actor, authz.OpUpdatePatientStatus); err != nil {
		return nil, err
	}

	doctor, err := u.userRepo.FindByID(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil || !doctor.IsDoctor() {
		return nil, ErrUnknownDoctor
	}

	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	assigned, err := u.patientRepo.AssignDoctor(ctx, patientID, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to assign doctor for patient %s: %+v", patientID, err)
		return nil, err
	}
	if !assigned {
		return nil, ErrInvalidTransition
	}

	u.auditService.Record(ctx, &actor.ID, entity.AuditActionPatientAssign, entity.JSON{
		"patient_id": patientID.String(),
		"doctor_id":  req.DoctorID.String(),
	})

	updated, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil || updated == nil {
		u.log.Warnf("Failed to reload patient %s: %+v", patientID, err)
		return nil, err
	}

	u.log.Infof("Doctor assigned: patient=%s, doctor=%s", patientID, req.DoctorID)
	return converter.PatientToResponse(updated), nil
}

// generatePatientID generates a human-readable record number: P + 8 hex
// characters.
func generatePatientID() string {
	return "P" + strings.ToUpper(uuid.New().String()[:8])
}
