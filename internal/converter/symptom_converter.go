package converter

import (
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
)

// SymptomToResponse converts a Symptom entity to SymptomResponse DTO
func SymptomToResponse(symptom *entity.Symptom) *dto.SymptomResponse {
	if symptom == nil {
		return nil
	}

	return &dto.SymptomResponse{
		ID:                 symptom.ID,
		UserID:             symptom.UserID,
		SymptomDescription: symptom.SymptomDescription,
		Severity:           symptom.Severity,
		DateReported:       symptom.DateReported,
		CreatedAt:          symptom.CreatedAt,
		UpdatedAt:          symptom.UpdatedAt,
	}
}

// SymptomsToResponses converts a slice of Symptom entities to DTOs
func SymptomsToResponses(symptoms []entity.Symptom) []dto.SymptomResponse {
	responses := make([]dto.SymptomResponse, len(symptoms))
	for i, symptom := range symptoms {
		responses[i] = *SymptomToResponse(&symptom)
	}
	return responses
}
