package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is the account discriminant. Exactly one role per account and it is
// immutable after creation; doctor and admin accounts carry a profile row
// keyed by the same id.
type Role string

const (
	RoleUser   Role = "user"
	RoleDoctor Role = "doctor"
	RoleAdmin  Role = "admin"
)

// IsValid reports whether r is one of the three known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleDoctor || r == RoleAdmin
}

// User represents the root account record for every role.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null;index" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	DoctorProfile *DoctorProfile `gorm:"foreignKey:ID" json:"doctor_profile,omitempty"`
	AdminProfile  *AdminProfile  `gorm:"foreignKey:ID" json:"admin_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}
