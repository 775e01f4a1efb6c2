package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCancelled, AppointmentStatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentStatusCancelled || s == AppointmentStatusCompleted
}

// statusTransitions is the exhaustive transition table:
// pending -> confirmed | cancelled, confirmed -> completed | cancelled.
// Anything not listed here is rejected.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending:   {AppointmentStatusConfirmed, AppointmentStatusCancelled},
	AppointmentStatusConfirmed: {AppointmentStatusCompleted, AppointmentStatusCancelled},
}

// CanTransitionTo reports whether the state machine defines s -> target.
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	for _, next := range statusTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Appointment is a concrete dated booking against a doctor's weekly window.
// For a given doctor and date, non-cancelled appointments never overlap.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index" json:"appointment_date"`
	StartTime       string            `gorm:"type:time;not null" json:"start_time"`
	EndTime         string            `gorm:"type:time;not null" json:"end_time"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User   User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Overlaps applies the half-open interval test against [start,end).
// Appointments that merely touch at an endpoint do not overlap.
func (a *Appointment) Overlaps(start, end string) bool {
	return start < a.EndTime && a.StartTime < end
}

// TransitionPermitted reports whether the actor may drive this appointment to
// target. Confirm/complete is reserved to the appointment's doctor or an
// admin; cancel is additionally open to the owning user.
func (a *Appointment) TransitionPermitted(target AppointmentStatus, actorID uuid.UUID, role Role) bool {
	switch target {
	case AppointmentStatusConfirmed, AppointmentStatusCompleted:
		return role == RoleAdmin || (role == RoleDoctor && actorID == a.DoctorID)
	case AppointmentStatusCancelled:
		if role == RoleAdmin {
			return true
		}
		if role == RoleDoctor && actorID == a.DoctorID {
			return true
		}
		return actorID == a.UserID
	}
	return false
}
