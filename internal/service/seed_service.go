package service

import (
	"context"
	"time"

	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// SeedService creates the demo accounts and one sample patient record on
// first startup, so a fresh deployment has something to log in with.
type SeedService struct {
	log         *logrus.Logger
	userRepo    repository.UserRepository
	patientRepo repository.PatientRepository
}

func NewSeedService(log *logrus.Logger, userRepo repository.UserRepository, patientRepo repository.PatientRepository) *SeedService {
	return &SeedService{
		log:         log,
		userRepo:    userRepo,
		patientRepo: patientRepo,
	}
}

// Run is idempotent: it does nothing if a super admin already exists.
func (s *SeedService) Run(ctx context.Context) error {
	count, err := s.userRepo.CountByRole(ctx, entity.RoleSuperAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	demoUsers := []struct {
		email    string
		password string
		name     string
		role     string
	}{
		{"admin@clinic.com", "admin123", "Super Admin", entity.RoleSuperAdmin},
		{"frontdesk@clinic.com", "front123", "Front Desk Staff", entity.RoleFrontDesk},
		{"doctor@clinic.com", "doctor123", "Dr. Smith", entity.RoleDoctor},
		{"patient@example.com", "patient123", "John Doe", entity.RolePatient},
	}

	var frontDesk *entity.User
	for _, du := range demoUsers {
		hashed, err := bcrypt.GenerateFromPassword([]byte(du.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := &entity.User{
			Email:    du.email,
			Password: string(hashed),
			Name:     du.name,
			Role:     du.role,
			IsActive: true,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return err
		}
		if du.role == entity.RoleFrontDesk {
			frontDesk = user
		}
	}

	dob, _ := time.Parse("2006-01-02", "1990-01-15")
	samplePatient := &entity.Patient{
		PatientID:        "P12345678",
		Name:             "John Doe",
		Email:            "patient@example.com",
		Phone:            "+91-9876543210",
		DateOfBirth:      dob,
		Gender:           "Male",
		Address:          "123 Main St, Hyderabad, Telangana",
		EmergencyContact: "+91-9876543211",
		MedicalHistory:   "No known allergies. Previous history of hypertension.",
		Status:           entity.PatientStatusRegistered,
		CreatedBy:        frontDesk.ID,
	}
	if err := s.patientRepo.Create(ctx, samplePatient); err != nil {
		return err
	}

	s.log.Info("Sample data created successfully")
	return nil
}
