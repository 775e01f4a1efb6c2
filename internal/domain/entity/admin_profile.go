package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminProfile extends an admin-role account. It carries no extra attributes;
// it exists so admin_logs entries have an identity to reference.
type AdminProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:ID" json:"user,omitempty"`
}

func (AdminProfile) TableName() string {
	return "admins"
}
