package repository

import (
	"errors"

	"clinic-appointment-service/internal/domain/entity"
	domainRepo "clinic-appointment-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type scheduleRepository struct{}

func NewScheduleRepository() domainRepo.ScheduleRepository {
	return &scheduleRepository{}
}

// Upsert relies on the (doctor_id, day_of_week) unique index: the conflict
// target turns the write into a single atomic insert-or-replace, so two
// concurrent upserts for the same weekday cannot produce duplicate windows.
func (r *scheduleRepository) Upsert(db *gorm.DB, schedule *entity.Schedule) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "doctor_id"}, {Name: "day_of_week"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"start_time", "end_time", "is_available", "updated_at",
		}),
	}).Create(schedule).Error
}

func (r *scheduleRepository) FindByDoctorAndDay(db *gorm.DB, doctorID uuid.UUID, day entity.DayOfWeek) (*entity.Schedule, error) {
	var schedule entity.Schedule
	err := db.Where("doctor_id = ? AND day_of_week = ?", doctorID, day).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	err := db.Where("doctor_id = ?", doctorID).
		Order("array_position(ARRAY['Monday','Tuesday','Wednesday','Thursday','Friday','Saturday','Sunday'], day_of_week::text)").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) Delete(db *gorm.DB, doctorID uuid.UUID, day entity.DayOfWeek) (int64, error) {
	result := db.Where("doctor_id = ? AND day_of_week = ?", doctorID, day).Delete(&entity.Schedule{})
	return result.RowsAffected, result.Error
}
