package authz

import (
	"errors"

	"clinic-management-api/internal/domain/entity"
)

// Operation identifies a guarded resource/action pair.
type Operation string

const (
	OpReadOwnRecord       Operation = "read:own-record"
	OpReadAllPatients     Operation = "read:all-patients"
	OpReadAllUsers        Operation = "read:all-users"
	OpReadDoctors         Operation = "read:doctors"
	OpCreatePatient       Operation = "create:patient"
	OpUpdatePatientStatus Operation = "update:patient-status"
	OpCreateSOAPNote      Operation = "create:soap-note"
	OpReadSOAPNotes       Operation = "read:soap-notes"
	OpCreateAppointment   Operation = "create:appointment"
	OpReadAppointments    Operation = "read:appointments"
	OpReadDashboardStats  Operation = "read:dashboard-stats"
)

// ErrForbidden is returned whenever the permission matrix denies an
// operation. A denied call performs no side effect.
var ErrForbidden = errors.New("forbidden")

// permissions is the static role -> operation grant table. Adding a role
// means extending this table, nothing else. Scoped grants (a doctor reading
// "all" patients, a patient reading "own" notes) pass the matrix here and
// are narrowed to the caller's records by the usecases.
var permissions = map[string]map[Operation]bool{
	entity.RoleSuperAdmin: {
		OpReadAllPatients:    true,
		OpReadAllUsers:       true,
		OpReadDoctors:        true,
		OpCreateAppointment:  true,
		OpReadAppointments:   true,
		OpReadDashboardStats: true,
	},
	entity.RoleFrontDesk: {
		OpReadAllPatients:     true,
		OpReadDoctors:         true,
		OpCreatePatient:       true,
		OpUpdatePatientStatus: true,
		OpCreateAppointment:   true,
		OpReadAppointments:    true,
		OpReadDashboardStats:  true,
	},
	entity.RoleDoctor: {
		OpReadAllPatients:    true, // scoped to own assignments
		OpReadDoctors:        true,
		OpCreateSOAPNote:     true, // own assigned patient, consulting only
		OpReadSOAPNotes:      true, // own assigned patients
		OpCreateAppointment:  true,
		OpReadAppointments:   true, // scoped to own
		OpReadDashboardStats: true, // scoped to own assignments
	},
	entity.RolePatient: {
		OpReadOwnRecord:     true,
		OpReadDoctors:       true,
		OpReadSOAPNotes:     true, // own record only
		OpCreateAppointment: true,
		OpReadAppointments:  true, // own record only
	},
}

// Allowed reports whether role holds a grant for op.
func Allowed(role string, op Operation) bool {
	return permissions[role][op]
}

// Authorize gates an operation for the acting identity. It returns
// ErrForbidden on deny so callers can surface a typed failure.
func Authorize(actor Actor, op Operation) error {
	if !Allowed(actor.Role, op) {
		return ErrForbidden
	}
	return nil
}
