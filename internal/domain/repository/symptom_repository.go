package repository

import (
	"clinic-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SymptomRepository interface {
	Create(db *gorm.DB, symptom *entity.Symptom) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Symptom, error)
}
