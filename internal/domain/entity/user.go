package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role names. The set is closed; authorization is driven by a static
// permission matrix keyed on these values, not by a roles table.
const (
	RoleSuperAdmin = "super_admin"
	RoleFrontDesk  = "front_desk"
	RoleDoctor     = "doctor"
	RolePatient    = "patient"
)

// ValidRoles lists every role accepted at registration time.
var ValidRoles = []string{RoleSuperAdmin, RoleFrontDesk, RoleDoctor, RolePatient}

// User represents the centralized authentication table. Users are never
// deleted, only deactivated.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Role      string    `gorm:"type:varchar(20);not null;index" json:"role"`
	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsDoctor reports whether the user can be the target of a doctor assignment.
func (u *User) IsDoctor() bool {
	return u.Role == RoleDoctor && u.IsActive
}
