package entity

import (
	"time"

	"github.com/google/uuid"
)

// Symptom is an informational self-report by a user. It has no relation to
// appointments.
type Symptom struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	SymptomDescription string    `gorm:"type:text;not null" json:"symptom_description"`
	Severity           int       `gorm:"not null" json:"severity"`
	DateReported       time.Time `gorm:"not null;autoCreateTime" json:"date_reported"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Symptom) TableName() string {
	return "symptoms"
}
