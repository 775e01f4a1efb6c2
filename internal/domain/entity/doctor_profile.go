package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorProfile extends a doctor-role account. IsAvailable is the doctor's
// global on/off switch: it gates bookings in addition to, not instead of,
// the weekly schedule windows.
type DoctorProfile struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Specialization string    `gorm:"type:varchar(255);not null;index" json:"specialization"`
	Phone          string    `gorm:"type:varchar(20);not null" json:"phone"`
	IsAvailable    bool      `gorm:"not null;default:true" json:"is_available"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User      User       `gorm:"foreignKey:ID" json:"user,omitempty"`
	Schedules []Schedule `gorm:"foreignKey:DoctorID" json:"schedules,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctors"
}
