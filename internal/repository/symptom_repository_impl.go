package repository

import (
	"clinic-appointment-service/internal/domain/entity"
	domainRepo "clinic-appointment-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type symptomRepository struct{}

func NewSymptomRepository() domainRepo.SymptomRepository {
	return &symptomRepository{}
}

func (r *symptomRepository) Create(db *gorm.DB, symptom *entity.Symptom) error {
	return db.Create(symptom).Error
}

func (r *symptomRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Symptom, error) {
	var symptoms []entity.Symptom
	err := db.Where("user_id = ?", userID).Order("date_reported DESC").Find(&symptoms).Error
	if err != nil {
		return nil, err
	}
	return symptoms, nil
}
