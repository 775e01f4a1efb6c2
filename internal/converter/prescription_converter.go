package converter

import (
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
)

// PrescriptionToResponse converts a Prescription entity to PrescriptionResponse DTO
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	return &dto.PrescriptionResponse{
		ID:                 prescription.ID,
		AppointmentID:      prescription.AppointmentID,
		DoctorID:           prescription.DoctorID,
		UserID:             prescription.UserID,
		Diagnosis:          prescription.Diagnosis,
		InteractionDetails: prescription.InteractionDetails,
		Medicines:          prescription.Medicines,
		DosageInstructions: prescription.DosageInstructions,
		CreatedAt:          prescription.CreatedAt,
		UpdatedAt:          prescription.UpdatedAt,
	}
}

// PrescriptionsToResponses converts a slice of Prescription entities to DTOs
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i, prescription := range prescriptions {
		responses[i] = *PrescriptionToResponse(&prescription)
	}
	return responses
}
