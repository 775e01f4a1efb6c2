package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type ReportSymptomRequest struct {
	SymptomDescription string `json:"symptom_description" validate:"required"`
	Severity           int    `json:"severity" validate:"required,gte=1,lte=10"`
}

// Response DTOs

type SymptomResponse struct {
	ID                 uuid.UUID `json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	SymptomDescription string    `json:"symptom_description"`
	Severity           int       `json:"severity"`
	DateReported       time.Time `json:"date_reported"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type SymptomListResponse struct {
	Symptoms []SymptomResponse `json:"symptoms"`
	Total    int               `json:"total"`
}
