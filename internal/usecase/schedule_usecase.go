package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic-appointment-service/internal/converter"
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/delivery/http/middleware"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/domain/repository"
	"clinic-appointment-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrInvalidDayOfWeek  = errors.New("invalid day of week")
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
	ErrInvalidTimeRange  = errors.New("start time must be before end time")
)

type ScheduleUsecase interface {
	UpsertSchedule(ctx context.Context, req *dto.UpsertScheduleRequest) (*dto.ScheduleResponse, error)
	GetWeeklyWindow(ctx context.Context, doctorID uuid.UUID, day entity.DayOfWeek) (*dto.ScheduleResponse, error)
	GetSchedulesByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleListResponse, error)
	DeleteSchedule(ctx context.Context, doctorID uuid.UUID, day entity.DayOfWeek) error
	IsWithinAvailability(ctx context.Context, doctorID uuid.UUID, date time.Time, start, end string) (bool, error)
}

type scheduleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	scheduleRepo repository.ScheduleRepository
	doctorRepo   repository.DoctorProfileRepository
	auditService service.AuditService
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.ScheduleRepository,
	doctorRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:           db,
		log:          log,
		scheduleRepo: scheduleRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

// UpsertSchedule writes a doctor's window for one weekday. The write is a
// single conditional upsert against the (doctor_id, day_of_week) unique key,
// not a find-then-update sequence.
func (u *scheduleUsecase) UpsertSchedule(ctx context.Context, req *dto.UpsertScheduleRequest) (*dto.ScheduleResponse, error) {
	if err := requireScheduleOwner(ctx, req.DoctorID); err != nil {
		return nil, err
	}

	day := entity.DayOfWeek(req.DayOfWeek)
	if !day.IsValid() {
		return nil, ErrInvalidDayOfWeek
	}

	start, end, err := normalizeInterval(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	schedule := &entity.Schedule{
		DoctorID:    req.DoctorID,
		DayOfWeek:   day,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: isAvailable,
	}

	if err := u.scheduleRepo.Upsert(u.db.WithContext(ctx), schedule); err != nil {
		u.log.Warnf("Failed to upsert schedule for doctor %s/%s: %+v", req.DoctorID, day, err)
		return nil, err
	}

	u.recordAudit(ctx, entity.AuditActionScheduleUpsert, fmt.Sprintf("doctor=%s day=%s window=%s-%s", req.DoctorID, day, start, end))

	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) GetWeeklyWindow(ctx context.Context, doctorID uuid.UUID, day entity.DayOfWeek) (*dto.ScheduleResponse, error) {
	if !day.IsValid() {
		return nil, ErrInvalidDayOfWeek
	}

	schedule, err := u.scheduleRepo.FindByDoctorAndDay(u.db.WithContext(ctx), doctorID, day)
	if err != nil {
		u.log.Warnf("Failed to find schedule for doctor %s/%s: %+v", doctorID, day, err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) GetSchedulesByDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleListResponse, error) {
	schedules, err := u.scheduleRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find schedules for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.ScheduleListResponse{
		Schedules: converter.SchedulesToResponses(schedules),
		Total:     len(schedules),
	}, nil
}

func (u *scheduleUsecase) DeleteSchedule(ctx context.Context, doctorID uuid.UUID, day entity.DayOfWeek) error {
	if err := requireScheduleOwner(ctx, doctorID); err != nil {
		return err
	}

	if !day.IsValid() {
		return ErrInvalidDayOfWeek
	}

	affected, err := u.scheduleRepo.Delete(u.db.WithContext(ctx), doctorID, day)
	if err != nil {
		u.log.Warnf("Failed to delete schedule for doctor %s/%s: %+v", doctorID, day, err)
		return err
	}
	if affected == 0 {
		return ErrScheduleNotFound
	}

	u.recordAudit(ctx, entity.AuditActionScheduleDelete, fmt.Sprintf("doctor=%s day=%s", doctorID, day))

	return nil
}

// IsWithinAvailability answers "is this doctor theoretically open at this
// time" against the root DB handle. The booking engine re-runs the same
// check inside its serializable transaction before committing.
func (u *scheduleUsecase) IsWithinAvailability(ctx context.Context, doctorID uuid.UUID, date time.Time, start, end string) (bool, error) {
	return checkAvailability(u.db.WithContext(ctx), u.doctorRepo, u.scheduleRepo, doctorID, date, start, end)
}

// recordAudit writes an admin log entry when the actor is an admin.
// Best-effort: errors are already logged by the audit service.
func (u *scheduleUsecase) recordAudit(ctx context.Context, action, details string) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return
	}
	if role, ok := middleware.GetRoleFromContext(ctx); !ok || role != entity.RoleAdmin {
		return
	}
	_ = u.auditService.Record(ctx, actorID, action, details)
}

// requireScheduleOwner lets admins touch any schedule and doctors only their
// own.
func requireScheduleOwner(ctx context.Context, doctorID uuid.UUID) error {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}
	role, _ := middleware.GetRoleFromContext(ctx)
	if role != entity.RoleAdmin && actorID != doctorID {
		return ErrForbidden
	}
	return nil
}

// checkAvailability is shared with the booking engine so the availability
// rule has a single definition: a window row must exist for the date's
// weekday, both the window flag and the doctor's global flag must be on, and
// [start,end) must be contained in the window.
func checkAvailability(db *gorm.DB, doctorRepo repository.DoctorProfileRepository, scheduleRepo repository.ScheduleRepository, doctorID uuid.UUID, date time.Time, start, end string) (bool, error) {
	doctor, err := doctorRepo.FindByID(db, doctorID)
	if err != nil {
		return false, err
	}
	if doctor == nil {
		return false, ErrDoctorNotFound
	}
	if !doctor.IsAvailable {
		return false, nil
	}

	window, err := scheduleRepo.FindByDoctorAndDay(db, doctorID, entity.DayOfWeekFromDate(date))
	if err != nil {
		return false, err
	}
	if window == nil || !window.IsAvailable {
		return false, nil
	}

	return window.Contains(start, end), nil
}

// normalizeInterval validates HH:MM endpoints and the start < end invariant.
func normalizeInterval(startTime, endTime string) (string, string, error) {
	start, err := entity.NormalizeClock(startTime)
	if err != nil {
		return "", "", ErrInvalidTimeFormat
	}
	end, err := entity.NormalizeClock(endTime)
	if err != nil {
		return "", "", ErrInvalidTimeFormat
	}
	if start >= end {
		return "", "", ErrInvalidTimeRange
	}
	return start, end, nil
}
