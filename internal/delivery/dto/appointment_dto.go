package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID        uuid.UUID `json:"doctor_id" validate:"required"`
	AppointmentDate string    `json:"appointment_date" validate:"required"` // Format: YYYY-MM-DD
	StartTime       string    `json:"start_time" validate:"required"`       // Format: HH:MM
	EndTime         string    `json:"end_time" validate:"required"`         // Format: HH:MM
	Notes           string    `json:"notes" validate:"omitempty,max=2000"`
}

type ListAppointmentsRequest struct {
	StartDate string `json:"start_date" validate:"omitempty"` // Format: YYYY-MM-DD
	EndDate   string `json:"end_date" validate:"omitempty"`   // Format: YYYY-MM-DD
	Limit     int    `json:"limit" validate:"omitempty,min=1,max=100"`
	Offset    int    `json:"offset" validate:"omitempty,min=0"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	DoctorID        uuid.UUID       `json:"doctor_id"`
	Doctor          *DoctorResponse `json:"doctor,omitempty"`
	AppointmentDate string          `json:"appointment_date"`
	StartTime       string          `json:"start_time"`
	EndTime         string          `json:"end_time"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
