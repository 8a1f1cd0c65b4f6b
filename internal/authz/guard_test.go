package authz

import (
	"context"
	"testing"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAllowed_PermissionMatrix(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		op      Operation
		allowed bool
	}{
		// super admin
		{"super admin reads all patients", entity.RoleSuperAdmin, OpReadAllPatients, true},
		{"super admin reads all users", entity.RoleSuperAdmin, OpReadAllUsers, true},
		{"super admin reads dashboard", entity.RoleSuperAdmin, OpReadDashboardStats, true},
		{"super admin cannot create patients", entity.RoleSuperAdmin, OpCreatePatient, false},
		{"super admin cannot update patient status", entity.RoleSuperAdmin, OpUpdatePatientStatus, false},
		{"super admin cannot write soap notes", entity.RoleSuperAdmin, OpCreateSOAPNote, false},
		{"super admin cannot read soap notes", entity.RoleSuperAdmin, OpReadSOAPNotes, false},

		// front desk
		{"front desk creates patients", entity.RoleFrontDesk, OpCreatePatient, true},
		{"front desk updates patient status", entity.RoleFrontDesk, OpUpdatePatientStatus, true},
		{"front desk reads all patients", entity.RoleFrontDesk, OpReadAllPatients, true},
		{"front desk reads doctors", entity.RoleFrontDesk, OpReadDoctors, true},
		{"front desk reads dashboard", entity.RoleFrontDesk, OpReadDashboardStats, true},
		{"front desk cannot read users", entity.RoleFrontDesk, OpReadAllUsers, false},
		{"front desk cannot write soap notes", entity.RoleFrontDesk, OpCreateSOAPNote, false},
		{"front desk cannot read soap notes", entity.RoleFrontDesk, OpReadSOAPNotes, false},

		// doctor
		{"doctor reads assigned patients", entity.RoleDoctor, OpReadAllPatients, true},
		{"doctor writes soap notes", entity.RoleDoctor, OpCreateSOAPNote, true},
		{"doctor reads soap notes", entity.RoleDoctor, OpReadSOAPNotes, true},
		{"doctor reads dashboard", entity.RoleDoctor, OpReadDashboardStats, true},
		{"doctor cannot create patients", entity.RoleDoctor, OpCreatePatient, false},
		{"doctor cannot update patient status", entity.RoleDoctor, OpUpdatePatientStatus, false},
		{"doctor cannot read users", entity.RoleDoctor, OpReadAllUsers, false},

		// patient
		{"patient reads own record", entity.RolePatient, OpReadOwnRecord, true},
		{"patient reads own soap notes", entity.RolePatient, OpReadSOAPNotes, true},
		{"patient reads doctors", entity.RolePatient, OpReadDoctors, true},
		{"patient cannot read all patients", entity.RolePatient, OpReadAllPatients, false},
		{"patient cannot write soap notes", entity.RolePatient, OpCreateSOAPNote, false},
		{"patient cannot read dashboard", entity.RolePatient, OpReadDashboardStats, false},
		{"patient cannot create patients", entity.RolePatient, OpCreatePatient, false},

		// unknown role denies everything
		{"unknown role denied", "nurse", OpReadAllPatients, false},
		{"empty role denied", "", OpReadOwnRecord, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, Allowed(tt.role, tt.op))
		})
	}
}

func TestAuthorize(t *testing.T) {
	doctor := Actor{ID: uuid.New(), Email: "doctor@clinic.com", Role: entity.RoleDoctor}

	assert.NoError(t, Authorize(doctor, OpCreateSOAPNote))
	assert.ErrorIs(t, Authorize(doctor, OpCreatePatient), ErrForbidden)
}

func TestActorContext_RoundTrip(t *testing.T) {
	actor := Actor{ID: uuid.New(), Email: "front@clinic.com", Role: entity.RoleFrontDesk}

	ctx := WithActor(context.Background(), actor)
	got, ok := ActorFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, actor, got)
}

func TestActorContext_Missing(t *testing.T) {
	_, ok := ActorFromContext(context.Background())
	assert.False(t, ok)
}
