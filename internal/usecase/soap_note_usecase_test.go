package usecase

import (
	"testing"
	"time"

	"clinic-management-api/internal/authz"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSOAPNoteUsecase(noteRepo *MockSOAPNoteRepository, patientRepo *MockPatientRepository) SOAPNoteUsecase {
	return NewSOAPNoteUsecase(testLogger(), noteRepo, patientRepo, noopAudit())
}

func consultingPatient(patientID, doctorID uuid.UUID) *entity.Patient {
	return &entity.Patient{
		ID:               patientID,
		Email:            "jane@example.com",
		Status:           entity.PatientStatusConsulting,
		AssignedDoctorID: &doctorID,
	}
}

func TestCreateNote_Success(t *testing.T) {
	noteRepo := &MockSOAPNoteRepository{}
	patientRepo := &MockPatientRepository{}
	usecase := newSOAPNoteUsecase(noteRepo, patientRepo)

	doctorID := uuid.New()
	patientID := uuid.New()

	patientRepo.On("FindByID", mock.Anything, patientID).Return(consultingPatient(patientID, doctorID), nil)

	var recorded *entity.SOAPNote
	noteRepo.On("CreateAndComplete", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		recorded = args.Get(1).(*entity.SOAPNote)
	}).Return(true, nil)

	ctx := actorContext(doctorID, "doctor@clinic.com", entity.RoleDoctor)
	resp, err := usecase.CreateNote(ctx, &dto.CreateSOAPNoteRequest{
		PatientID:  patientID,
		Subjective: "Headache for two days",
		Objective:  "BP 120/80, no fever",
		Assessment: "Tension headache",
		Plan:       "Ibuprofen, follow up in a week",
	})

	require.NoError(t, err)
	require.NotNil(t, recorded)
	assert.Equal(t, doctorID, recorded.DoctorID)
	assert.Equal(t, patientID, recorded.PatientID)
	assert.WithinDuration(t, time.Now().UTC(), recorded.ConsultationDate, time.Minute)
	assert.Equal(t, "Tension headache", resp.Assessment)
}

func TestCreateNote_NotAssignedDoctor(t *testing.T) {
	noteRepo := &MockSOAPNoteRepository{}
	patientRepo := &MockPatientRepository{}
	usecase := newSOAPNoteUsecase(noteRepo, patientRepo)

	assignedID := uuid.New()
	intruderID := uuid.New()
	patientID := uuid.New()

	patientRepo.On("FindByID", mock.Anything, patientID).Return(consultingPatient(patientID, assignedID), nil)

	ctx := actorContext(intruderID, "other@clinic.com", entity.RoleDoctor)
	_, err := usecase.CreateNote(ctx, &dto.CreateSOAPNoteRequest{
		PatientID:  patientID,
		Subjective: "s", Objective: "o", Assessment: "a", Plan: "p",
	})

	assert.ErrorIs(t, err, authz.ErrForbidden)
	noteRepo.AssertNotCalled(t, "CreateAndComplete", mock.Anything, mock.Anything)
}

func TestCreateNote_PatientNotConsulting(t *testing.T) {
	noteRepo := &MockSOAPNoteRepository{}
	patientRepo := &MockPatientRepository{}
	usecase := newSOAPNoteUsecase(noteRepo, patientRepo)

	doctorID := uuid.New()
	patientID := uuid.New()

	patientRepo.On("FindByID", mock.Anything, patientID).Return(consultingPatient(patientID, doctorID), nil)
	// The transactional insert observed a non-consulting patient and wrote
	// nothing. A concurrent duplicate submit loses this way.
	noteRepo.On("CreateAndComplete", mock.Anything, mock.Anything).Return(false, nil)

	ctx := actorContext(doctorID, "doctor@clinic.com", entity.RoleDoctor)
	_, err := usecase.CreateNote(ctx, &dto.CreateSOAPNoteRequest{
		PatientID:  patientID,
		Subjective: "s", Objective: "o", Assessment: "a", Plan: "p",
	})

	assert.ErrorIs(t, err, ErrPatientNotConsulting)
}

func TestCreateNote_PatientNotFound(t *testing.T) {
	patientRepo := &MockPatientRepository{}
	usecase := newSOAPNoteUsecase(&MockSOAPNoteRepository{}, patientRepo)

	patientID := uuid.New()
	patientRepo.On("FindByID", mock.Anything, patientID).Return(nil, nil)

	ctx := actorContext(uuid.New(), "doctor@clinic.com", entity.RoleDoctor)
	_, err := usecase.CreateNote(ctx, &dto.CreateSOAPNoteRequest{
		PatientID:  patientID,
		Subjective: "s", Objective: "o", Assessment: "a", Plan: "p",
	})

	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestCreateNote_NonDoctorForbidden(t *testing.T) {
	usecase := newSOAPNoteUsecase(&MockSOAPNoteRepository{}, &MockPatientRepository{})

	for _, role := range []string{entity.RoleSuperAdmin, entity.RoleFrontDesk, entity.RolePatient} {
		ctx := actorContext(uuid.New(), role+"@clinic.com", role)
		_, err := usecase.CreateNote(ctx, &dto.CreateSOAPNoteRequest{
			PatientID:  uuid.New(),
			Subjective: "s", Objective: "o", Assessment: "a", Plan: "p",
		})
		assert.ErrorIs(t, err, authz.ErrForbidden, "role %s", role)
	}
}

func TestListNotes_DoctorScope(t *testing.T) {
	noteRepo := &MockSOAPNoteRepository{}
	patientRepo := &MockPatientRepository{}
	usecase := newSOAPNoteUsecase(noteRepo, patientRepo)

	doctorID := uuid.New()
	patientID := uuid.New()
	patient := &entity.Patient{
		ID:               patientID,
		Email:            "jane@example.com",
		Status:           entity.PatientStatusCompleted,
		AssignedDoctorID: &doctorID,
	}
	notes := []entity.SOAPNote{
		{ID: uuid.New(), PatientID: patientID, DoctorID: doctorID, Assessment: "Tension headache"},
	}

	patientRepo.On("FindByID", mock.Anything, patientID).Return(patient, nil)
	noteRepo.On("FindByPatientID", mock.Anything, patientID).Return(notes, nil)

	resp, err := usecase.ListNotes(actorContext(doctorID, "doctor@clinic.com", entity.RoleDoctor), patientID)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	_, err = usecase.ListNotes(actorContext(uuid.New(), "other@clinic.com", entity.RoleDoctor), patientID)
	assert.ErrorIs(t, err, authz.ErrForbidden)
}

func TestListNotes_PatientScope(t *testing.T) {
	noteRepo := &MockSOAPNoteRepository{}
	patientRepo := &MockPatientRepository{}
	usecase := newSOAPNoteUsecase(noteRepo, patientRepo)

	doctorID := uuid.New()
	patientID := uuid.New()
	patient := consultingPatient(patientID, doctorID)

	patientRepo.On("FindByID", mock.Anything, patientID).Return(patient, nil)
	noteRepo.On("FindByPatientID", mock.Anything, patientID).Return([]entity.SOAPNote{}, nil)

	resp, err := usecase.ListNotes(actorContext(uuid.New(), "jane@example.com", entity.RolePatient), patientID)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)

	_, err = usecase.ListNotes(actorContext(uuid.New(), "stranger@example.com", entity.RolePatient), patientID)
	assert.ErrorIs(t, err, authz.ErrForbidden)
}

func TestListNotes_StaffForbidden(t *testing.T) {
	usecase := newSOAPNoteUsecase(&MockSOAPNoteRepository{}, &MockPatientRepository{})

	// Clinical note content is restricted to the treating doctor and the
	// patient. Administrative roles hold no note-read grant.
	for _, role := range []string{entity.RoleSuperAdmin, entity.RoleFrontDesk} {
		ctx := actorContext(uuid.New(), role+"@clinic.com", role)
		_, err := usecase.ListNotes(ctx, uuid.New())
		assert.ErrorIs(t, err, authz.ErrForbidden, "role %s", role)
	}
}

// TestConsultationWorkflow walks one visit end to end against mocked stores:
// registration, doctor assignment, note creation closing the visit, and the
// losing retry afterwards.
func TestConsultationWorkflow(t *testing.T) {
	patientRepo := &MockPatientRepository{}
	userRepo := &MockUserRepository{}
	noteRepo := &MockSOAPNoteRepository{}

	patients := newPatientUsecase(patientRepo, userRepo)
	notes := newSOAPNoteUsecase(noteRepo, patientRepo)

	frontDeskID := uuid.New()
	doctorID := uuid.New()
	frontDesk := actorContext(frontDeskID, "front@clinic.com", entity.RoleFrontDesk)
	doctor := actorContext(doctorID, "doctor@clinic.com", entity.RoleDoctor)

	// Registration.
	var record *entity.Patient
	patientRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		record = args.Get(1).(*entity.Patient)
		record.ID = uuid.New()
	}).Return(nil)

	created, err := patients.CreatePatient(frontDesk, &dto.CreatePatientRequest{
		Name:             "Jane Roe",
		Email:            "jane@example.com",
		Phone:            "555-0100",
		DateOfBirth:      "1990-04-12",
		EmergencyContact: "John Roe",
	})
	require.NoError(t, err)
	assert.Equal(t, "registered", created.Status)

	// Assignment moves the record to consulting.
	userRepo.On("FindByID", mock.Anything, doctorID).Return(
		&entity.User{ID: doctorID, Role: entity.RoleDoctor, IsActive: true}, nil)
	patientRepo.On("FindByID", mock.Anything, record.ID).Return(record, nil).Once()
	patientRepo.On("AssignDoctor", mock.Anything, record.ID, doctorID).Run(func(mock.Arguments) {
		record.Status = entity.PatientStatusConsulting
		record.AssignedDoctorID = &doctorID
	}).Return(true, nil).Once()
	patientRepo.On("FindByID", mock.Anything, record.ID).Return(record, nil)

	assigned, err := patients.AssignDoctor(frontDesk, record.ID, &dto.AssignDoctorRequest{DoctorID: doctorID})
	require.NoError(t, err)
	assert.Equal(t, "consulting", assigned.Status)

	// The note closes the visit.
	noteRepo.On("CreateAndComplete", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		record.Status = entity.PatientStatusCompleted
	}).Return(true, nil).Once()

	req := &dto.CreateSOAPNoteRequest{
		PatientID:  record.ID,
		Subjective: "Headache", Objective: "BP normal", Assessment: "Tension", Plan: "Rest",
	}
	_, err = notes.CreateNote(doctor, req)
	require.NoError(t, err)
	assert.Equal(t, entity.PatientStatusCompleted, record.Status)

	// A duplicate submit finds the visit already closed.
	noteRepo.On("CreateAndComplete", mock.Anything, mock.Anything).Return(false, nil).Once()
	_, err = notes.CreateNote(doctor, req)
	assert.ErrorIs(t, err, ErrPatientNotConsulting)

	// And a second assignment attempt cannot restart the visit.
	patientRepo.On("AssignDoctor", mock.Anything, record.ID, doctorID).Return(false, nil)
	_, err = patients.AssignDoctor(frontDesk, record.ID, &dto.AssignDoctorRequest{DoctorID: doctorID})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
