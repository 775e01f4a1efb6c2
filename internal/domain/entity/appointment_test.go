package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"pending to confirmed", AppointmentStatusPending, AppointmentStatusConfirmed, true},
		{"pending to cancelled", AppointmentStatusPending, AppointmentStatusCancelled, true},
		{"pending to completed", AppointmentStatusPending, AppointmentStatusCompleted, false},
		{"confirmed to completed", AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{"confirmed to cancelled", AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{"confirmed to pending", AppointmentStatusConfirmed, AppointmentStatusPending, false},
		{"cancelled is terminal", AppointmentStatusCancelled, AppointmentStatusPending, false},
		{"cancelled to confirmed", AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
		{"completed is terminal", AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{"no self transition", AppointmentStatusPending, AppointmentStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointmentStatusIsTerminal(t *testing.T) {
	assert.False(t, AppointmentStatusPending.IsTerminal())
	assert.False(t, AppointmentStatusConfirmed.IsTerminal())
	assert.True(t, AppointmentStatusCancelled.IsTerminal())
	assert.True(t, AppointmentStatusCompleted.IsTerminal())
}

func TestAppointmentStatusIsValid(t *testing.T) {
	assert.True(t, AppointmentStatusPending.IsValid())
	assert.False(t, AppointmentStatus("unknown").IsValid())
	assert.False(t, AppointmentStatus("").IsValid())
}

func TestAppointmentOverlaps(t *testing.T) {
	appointment := &Appointment{StartTime: "10:00", EndTime: "11:00"}

	tests := []struct {
		name     string
		start    string
		end      string
		overlaps bool
	}{
		{"identical interval", "10:00", "11:00", true},
		{"contained interval", "10:15", "10:45", true},
		{"overlapping start", "09:30", "10:30", true},
		{"overlapping end", "10:30", "11:30", true},
		{"touching at start", "09:00", "10:00", false},
		{"touching at end", "11:00", "12:00", false},
		{"disjoint before", "08:00", "09:00", false},
		{"disjoint after", "12:00", "13:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, appointment.Overlaps(tt.start, tt.end))
		})
	}
}

func TestAppointmentTransitionPermitted(t *testing.T) {
	doctorID := uuid.New()
	userID := uuid.New()
	otherID := uuid.New()
	adminID := uuid.New()

	appointment := &Appointment{UserID: userID, DoctorID: doctorID}

	tests := []struct {
		name      string
		target    AppointmentStatus
		actorID   uuid.UUID
		role      Role
		permitted bool
	}{
		{"doctor confirms own appointment", AppointmentStatusConfirmed, doctorID, RoleDoctor, true},
		{"other doctor cannot confirm", AppointmentStatusConfirmed, otherID, RoleDoctor, false},
		{"admin confirms any appointment", AppointmentStatusConfirmed, adminID, RoleAdmin, true},
		{"user cannot confirm own appointment", AppointmentStatusConfirmed, userID, RoleUser, false},
		{"doctor completes own appointment", AppointmentStatusCompleted, doctorID, RoleDoctor, true},
		{"user cannot complete", AppointmentStatusCompleted, userID, RoleUser, false},
		{"user cancels own appointment", AppointmentStatusCancelled, userID, RoleUser, true},
		{"other user cannot cancel", AppointmentStatusCancelled, otherID, RoleUser, false},
		{"doctor cancels own appointment", AppointmentStatusCancelled, doctorID, RoleDoctor, true},
		{"admin cancels any appointment", AppointmentStatusCancelled, adminID, RoleAdmin, true},
		{"no actor may force pending", AppointmentStatusPending, adminID, RoleAdmin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.permitted, appointment.TransitionPermitted(tt.target, tt.actorID, tt.role))
		})
	}
}
