package usecase

import (
	"context"
	"time"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) FindActiveByRole(ctx context.Context, role string) ([]entity.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

// MockPatientRepository is a mock implementation of repository.PatientRepository
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByAssignedDoctor(ctx context.Context, doctorID uuid.UUID) ([]entity.Patient, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByEmail(ctx context.Context, email string) (*entity.Patient, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *MockPatientRepository) AssignDoctor(ctx context.Context, patientID, doctorID uuid.UUID) (bool, error) {
	args := m.Called(ctx, patientID, doctorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPatientRepository) Counts(ctx context.Context) (*entity.PatientCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PatientCounts), args.Error(1)
}

func (m *MockPatientRepository) CountsByDoctor(ctx context.Context, doctorID uuid.UUID) (*entity.DoctorCounts, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DoctorCounts), args.Error(1)
}

// MockSOAPNoteRepository is a mock implementation of repository.SOAPNoteRepository
type MockSOAPNoteRepository struct {
	mock.Mock
}

func (m *MockSOAPNoteRepository) CreateAndComplete(ctx context.Context, note *entity.SOAPNote) (bool, error) {
	args := m.Called(ctx, note)
	return args.Bool(0), args.Error(1)
}

func (m *MockSOAPNoteRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.SOAPNote, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SOAPNote), args.Error(1)
}

// MockAppointmentRepository is a mock implementation of repository.AppointmentRepository
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Appointment, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

// MockSessionRepository is a mock implementation of repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Store(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, userID, tokenID, ttl)
	return args.Error(0)
}

func (m *MockSessionRepository) Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	args := m.Called(ctx, userID, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, userID uuid.UUID, tokenID string) error {
	args := m.Called(ctx, userID, tokenID)
	return args.Error(0)
}

// MockAuditService is a mock implementation of service.AuditService
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, userID *uuid.UUID, action string, metadata entity.JSON) {
	m.Called(ctx, userID, action, metadata)
}

// noopAudit returns an audit mock that accepts any Record call. Most tests
// only care that the workflow succeeded or failed, not what was audited.
func noopAudit() *MockAuditService {
	audit := &MockAuditService{}
	audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	return audit
}
