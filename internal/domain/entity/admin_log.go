package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminLog is an append-only record of an administrative action. Rows are
// never updated or deleted.
type AdminLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AdminID   uuid.UUID `gorm:"type:uuid;not null;index" json:"admin_id"`
	Action    string    `gorm:"type:text;not null" json:"action"`
	Details   string    `gorm:"type:text" json:"details,omitempty"`
	Timestamp time.Time `gorm:"not null;autoCreateTime;index" json:"timestamp"`

	// Relationships
	Admin AdminProfile `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
}

func (AdminLog) TableName() string {
	return "admin_logs"
}

// Common audit actions
const (
	AuditActionDoctorCreate        = "doctor.create"
	AuditActionDoctorUpdate        = "doctor.update"
	AuditActionDoctorDelete        = "doctor.delete"
	AuditActionScheduleUpsert      = "schedule.upsert"
	AuditActionScheduleDelete      = "schedule.delete"
	AuditActionAppointmentConfirm  = "appointment.confirm"
	AuditActionAppointmentCancel   = "appointment.cancel"
	AuditActionAppointmentComplete = "appointment.complete"
	AuditActionPrescriptionCreate  = "prescription.create"
)
