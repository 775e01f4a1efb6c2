package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpsertScheduleRequest struct {
	DoctorID    uuid.UUID `json:"doctor_id" validate:"required"`
	DayOfWeek   string    `json:"day_of_week" validate:"required"`
	StartTime   string    `json:"start_time" validate:"required"` // Format: HH:MM
	EndTime     string    `json:"end_time" validate:"required"`   // Format: HH:MM
	IsAvailable *bool     `json:"is_available" validate:"omitempty"`
}

// Response DTOs

type ScheduleResponse struct {
	ID          uuid.UUID       `json:"id"`
	DoctorID    uuid.UUID       `json:"doctor_id"`
	Doctor      *DoctorResponse `json:"doctor,omitempty"`
	DayOfWeek   string          `json:"day_of_week"`
	StartTime   string          `json:"start_time"`
	EndTime     string          `json:"end_time"`
	IsAvailable bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}
