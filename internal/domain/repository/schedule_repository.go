package repository

import (
	"clinic-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleRepository interface {
	// Upsert inserts the window or, when a row for (doctor_id, day_of_week)
	// already exists, replaces it in a single conditional write.
	Upsert(db *gorm.DB, schedule *entity.Schedule) error
	FindByDoctorAndDay(db *gorm.DB, doctorID uuid.UUID, day entity.DayOfWeek) (*entity.Schedule, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Schedule, error)
	Delete(db *gorm.DB, doctorID uuid.UUID, day entity.DayOfWeek) (int64, error)
}
