package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePrescriptionRequest struct {
	AppointmentID      uuid.UUID `json:"appointment_id" validate:"required"`
	Diagnosis          string    `json:"diagnosis" validate:"required"`
	InteractionDetails string    `json:"interaction_details" validate:"required"`
	Medicines          string    `json:"medicines" validate:"required"`
	DosageInstructions string    `json:"dosage_instructions" validate:"required"`

	// Optional; when supplied they must match the appointment.
	DoctorID uuid.UUID `json:"doctor_id" validate:"omitempty"`
	UserID   uuid.UUID `json:"user_id" validate:"omitempty"`
}

// Response DTOs

type PrescriptionResponse struct {
	ID                 uuid.UUID `json:"id"`
	AppointmentID      uuid.UUID `json:"appointment_id"`
	DoctorID           uuid.UUID `json:"doctor_id"`
	UserID             uuid.UUID `json:"user_id"`
	Diagnosis          string    `json:"diagnosis"`
	InteractionDetails string    `json:"interaction_details"`
	Medicines          string    `json:"medicines"`
	DosageInstructions string    `json:"dosage_instructions"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}
