package usecase

import (
	"testing"

	"clinic-management-api/internal/authz"
	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListUsers_SuperAdminOnly(t *testing.T) {
	userRepo := &MockUserRepository{}
	usecase := NewUserUsecase(testLogger(), userRepo)

	users := []entity.User{
		{ID: uuid.New(), Email: "admin@clinic.com", Role: entity.RoleSuperAdmin, IsActive: true},
		{ID: uuid.New(), Email: "doctor@clinic.com", Role: entity.RoleDoctor, IsActive: true},
	}
	userRepo.On("FindAll", mock.Anything).Return(users, nil)

	resp, err := usecase.ListUsers(actorContext(uuid.New(), "admin@clinic.com", entity.RoleSuperAdmin))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	for _, role := range []string{entity.RoleFrontDesk, entity.RoleDoctor, entity.RolePatient} {
		_, err := usecase.ListUsers(actorContext(uuid.New(), role+"@clinic.com", role))
		assert.ErrorIs(t, err, authz.ErrForbidden, "role %s", role)
	}
}

func TestListDoctors_AllRoles(t *testing.T) {
	userRepo := &MockUserRepository{}
	usecase := NewUserUsecase(testLogger(), userRepo)

	doctors := []entity.User{
		{ID: uuid.New(), Email: "doctor@clinic.com", Role: entity.RoleDoctor, IsActive: true},
	}
	userRepo.On("FindActiveByRole", mock.Anything, entity.RoleDoctor).Return(doctors, nil)

	for _, role := range entity.ValidRoles {
		resp, err := usecase.ListDoctors(actorContext(uuid.New(), role+"@clinic.com", role))
		require.NoError(t, err, "role %s", role)
		assert.Equal(t, 1, resp.Total)
	}
}
