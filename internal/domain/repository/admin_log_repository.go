package repository

import (
	"clinic-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminLogRepository interface {
	Create(db *gorm.DB, log *entity.AdminLog) error
	FindAll(db *gorm.DB, limit, offset int) ([]entity.AdminLog, error)
	Count(db *gorm.DB) (int64, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.AdminLog, error)
}
