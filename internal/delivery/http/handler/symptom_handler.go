package handler

import (
	"encoding/json"
	"net/http"

	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/usecase"
	"clinic-appointment-service/pkg/response"
	"clinic-appointment-service/pkg/validator"
)

type SymptomHandler struct {
	symptomUsecase usecase.SymptomUsecase
	validator      *validator.CustomValidator
}

func NewSymptomHandler(symptomUsecase usecase.SymptomUsecase, validator *validator.CustomValidator) *SymptomHandler {
	return &SymptomHandler{
		symptomUsecase: symptomUsecase,
		validator:      validator,
	}
}

func (h *SymptomHandler) ReportSymptom(w http.ResponseWriter, r *http.Request) {
	var req dto.ReportSymptomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	symptom, err := h.symptomUsecase.Report(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to report symptom")
		return
	}

	response.Success(w, http.StatusCreated, "Symptom reported successfully", symptom)
}

func (h *SymptomHandler) GetMySymptoms(w http.ResponseWriter, r *http.Request) {
	symptoms, err := h.symptomUsecase.ListForUser(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get symptoms")
		return
	}

	response.Success(w, http.StatusOK, "Symptoms retrieved successfully", symptoms)
}
