package repository

import (
	"errors"
	"time"

	"clinic-appointment-service/internal/domain/entity"
	domainRepo "clinic-appointment-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor.User").Preload("User").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// CountOverlapping applies the half-open interval test in SQL. Cancelled
// appointments free their interval and are excluded.
func (r *appointmentRepository) CountOverlapping(db *gorm.DB, doctorID uuid.UUID, date time.Time, start, end string) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND appointment_date = ? AND status != ?", doctorID, date, entity.AppointmentStatusCancelled).
		Where("start_time < ? AND end_time > ?", end, start).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	return r.findFiltered(db.Where("doctor_id = ?", doctorID).Preload("User"), filter)
}

func (r *appointmentRepository) FindByUserID(db *gorm.DB, userID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	return r.findFiltered(db.Where("user_id = ?", userID).Preload("Doctor.User"), filter)
}

func (r *appointmentRepository) CountByDoctorID(db *gorm.DB, doctorID uuid.UUID, filter *entity.AppointmentFilter) (int64, error) {
	return r.countFiltered(db.Model(&entity.Appointment{}).Where("doctor_id = ?", doctorID), filter)
}

func (r *appointmentRepository) CountByUserID(db *gorm.DB, userID uuid.UUID, filter *entity.AppointmentFilter) (int64, error) {
	return r.countFiltered(db.Model(&entity.Appointment{}).Where("user_id = ?", userID), filter)
}

func (r *appointmentRepository) countFiltered(query *gorm.DB, filter *entity.AppointmentFilter) (int64, error) {
	if filter != nil {
		if filter.StartDate != "" {
			query = query.Where("appointment_date >= ?", filter.StartDate)
		}
		if filter.EndDate != "" {
			query = query.Where("appointment_date <= ?", filter.EndDate)
		}
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *appointmentRepository) findFiltered(query *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	if filter != nil {
		if filter.StartDate != "" {
			query = query.Where("appointment_date >= ?", filter.StartDate)
		}
		if filter.EndDate != "" {
			query = query.Where("appointment_date <= ?", filter.EndDate)
		}
		if filter.Limit > 0 {
			query = query.Limit(filter.Limit).Offset(filter.Offset)
		}
	}

	var appointments []entity.Appointment
	err := query.Order("appointment_date ASC, start_time ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateStatusIfCurrent is the optimistic-concurrency write: the expected
// prior status is part of the predicate, so a racing transition loses with
// zero rows affected instead of silently overwriting.
func (r *appointmentRepository) UpdateStatusIfCurrent(db *gorm.DB, id uuid.UUID, expected, target entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, expected).
		Update("status", target)
	return result.RowsAffected, result.Error
}
