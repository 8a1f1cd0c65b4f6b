package usecase

import (
	"context"

	"clinic-management-api/internal/authz"
	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/service"

	"github.com/sirupsen/logrus"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	actor, ok := authz.ActorFromContext(ctx)
	if !ok {
		return nil, ErrInvalidToken
	}
	if err := authz.Authorize(actor, authz.OpCreateAppointment); err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		Status:          entity.AppointmentStatusScheduled,
		Notes:           req.Notes,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, &actor.ID, entity.AuditActionAppointmentCreate, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"patient_id":     req.PatientID.String(),
		"doctor_id":      req.DoctorID.String(),
	})

	return converter.AppointmentToResponse(appointment), nil
}

// ListAppointments scopes the result set by role: a doctor sees their own
// schedule, a patient the appointments of their linked record, staff see
// everything.
func (u *appointmentUsecase) ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	actor, ok := authz.ActorFromContext(ctx)
	if !ok {
		return nil, ErrInvalidToken
	}
	if err := authz.Authorize(actor, authz.OpReadAppointments); err != nil {
		return nil, err
	}

	var appointments []entity.Appointment
	var err error

	switch actor.Role {
	case entity.RoleDoctor:
		appointments, err = u.appointmentRepo.FindByDoctorID(ctx, actor.ID)
	case entity.RolePatient:
		var own *entity.Patient
		own, err = u.patientRepo.FindByEmail(ctx, actor.Email)
		if err == nil && own != nil {
			appointments, err = u.appointmentRepo.FindByPatientID(ctx, own.ID)
		}
	default:
		appointments, err = u.appointmentRepo.FindAll(ctx)
	}

	if err != nil {
		u.log.Warnf("Failed to list appointments for %s: %+v", actor.ID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}
