package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-appointment-service/internal/converter"
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/delivery/http/middleware"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SymptomUsecase interface {
	Report(ctx context.Context, req *dto.ReportSymptomRequest) (*dto.SymptomResponse, error)
	ListForUser(ctx context.Context) (*dto.SymptomListResponse, error)
}

type symptomUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	symptomRepo repository.SymptomRepository
}

func NewSymptomUsecase(db *gorm.DB, log *logrus.Logger, symptomRepo repository.SymptomRepository) SymptomUsecase {
	return &symptomUsecase{
		db:          db,
		log:         log,
		symptomRepo: symptomRepo,
	}
}

// Report records a symptom for the logged-in user. Symptoms are informational
// history only; they never gate booking.
func (u *symptomUsecase) Report(ctx context.Context, req *dto.ReportSymptomRequest) (*dto.SymptomResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	symptom := &entity.Symptom{
		UserID:             userID,
		SymptomDescription: req.SymptomDescription,
		Severity:           req.Severity,
		DateReported:       time.Now().UTC(),
	}

	if err := u.symptomRepo.Create(u.db.WithContext(ctx), symptom); err != nil {
		u.log.Warnf("Failed to create symptom for user %s: %+v", userID, err)
		return nil, err
	}

	return converter.SymptomToResponse(symptom), nil
}

// ListForUser returns the logged-in user's reported symptoms, newest first.
func (u *symptomUsecase) ListForUser(ctx context.Context) (*dto.SymptomListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	symptoms, err := u.symptomRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list symptoms for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.SymptomListResponse{
		Symptoms: converter.SymptomsToResponses(symptoms),
		Total:    len(symptoms),
	}, nil
}
