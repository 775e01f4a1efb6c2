package repository

import (
	"errors"

	"clinic-appointment-service/internal/domain/entity"
	domainRepo "clinic-appointment-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type adminLogRepository struct{}

func NewAdminLogRepository() domainRepo.AdminLogRepository {
	return &adminLogRepository{}
}

func (r *adminLogRepository) Create(db *gorm.DB, log *entity.AdminLog) error {
	return db.Create(log).Error
}

func (r *adminLogRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.AdminLog, error) {
	var logs []entity.AdminLog
	query := db.Preload("Admin.User").Order("timestamp DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	err := query.Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *adminLogRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.AdminLog{}).Count(&count).Error
	return count, err
}

func (r *adminLogRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.AdminLog, error) {
	var log entity.AdminLog
	err := db.Preload("Admin.User").Where("id = ?", id).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
