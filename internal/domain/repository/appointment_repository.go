package repository

import (
	"time"

	"clinic-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// CountOverlapping counts non-cancelled appointments for the doctor on
	// date whose [start_time,end_time) intersects [start,end).
	CountOverlapping(db *gorm.DB, doctorID uuid.UUID, date time.Time, start, end string) (int64, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	// CountByDoctorID and CountByUserID apply the filter's date range but not
	// its page bounds, so listings can report the full matching row count.
	CountByDoctorID(db *gorm.DB, doctorID uuid.UUID, filter *entity.AppointmentFilter) (int64, error)
	CountByUserID(db *gorm.DB, userID uuid.UUID, filter *entity.AppointmentFilter) (int64, error)
	// UpdateStatusIfCurrent moves id from expected to target and reports the
	// affected row count. Zero means the expected status was stale or the row
	// is gone; the caller decides which by re-reading.
	UpdateStatusIfCurrent(db *gorm.DB, id uuid.UUID, expected, target entity.AppointmentStatus) (int64, error)
}
