package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prescription is append-only clinical history attached to an appointment
// that reached confirmed or completed. DoctorID and UserID are denormalized
// from the appointment at creation time.
type Prescription struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID      uuid.UUID `gorm:"type:uuid;not null;index" json:"appointment_id"`
	DoctorID           uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Diagnosis          string    `gorm:"type:text;not null" json:"diagnosis"`
	InteractionDetails string    `gorm:"type:text;not null" json:"interaction_details"`
	Medicines          string    `gorm:"type:text;not null" json:"medicines"`
	DosageInstructions string    `gorm:"type:text;not null" json:"dosage_instructions"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
