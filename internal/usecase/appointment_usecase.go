package usecase

import (
	"context"
	"database/sql"
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
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
	ErrOutsideAvailability = errors.New("requested slot is outside the doctor's availability")
	ErrSlotConflict        = errors.New("requested slot conflicts with an existing appointment")
	ErrInvalidTransition   = errors.New("status transition not permitted")
	ErrForbidden           = errors.New("actor is not permitted to perform this action")
	ErrStatusConflict      = errors.New("appointment status changed concurrently")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Transition(ctx context.Context, appointmentID uuid.UUID, target entity.AppointmentStatus) (*dto.AppointmentResponse, error)
	ListForDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.ListAppointmentsRequest) (*dto.AppointmentListResponse, error)
	ListForUser(ctx context.Context, req *dto.ListAppointmentsRequest) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	scheduleRepo    repository.ScheduleRepository
	doctorRepo      repository.DoctorProfileRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	scheduleRepo repository.ScheduleRepository,
	doctorRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
	}
}

// Create books a slot for the logged-in user.
//
// Precondition order, first failure wins:
// 1. start < end
// 2. within the doctor's weekly availability
// 3. no overlapping non-cancelled appointment for the same doctor and date
//
// Checks 2 and 3 and the insert run inside one SERIALIZABLE transaction, so
// two concurrent creates for overlapping intervals cannot both commit: the
// loser fails either the overlap count or the serialization check (pg 40001),
// both surfaced as ErrSlotConflict.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	start, end, err := normalizeInterval(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelSerializable})
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	available, err := checkAvailability(tx, u.doctorRepo, u.scheduleRepo, req.DoctorID, date, start, end)
	if err != nil {
		if errors.Is(err, ErrDoctorNotFound) {
			return nil, err
		}
		u.log.Warnf("Failed availability check for doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if !available {
		return nil, ErrOutsideAvailability
	}

	overlapping, err := u.appointmentRepo.CountOverlapping(tx, req.DoctorID, date, start, end)
	if err != nil {
		u.log.Warnf("Failed overlap check for doctor %s on %s: %+v", req.DoctorID, req.AppointmentDate, err)
		return nil, err
	}
	if overlapping > 0 {
		return nil, ErrSlotConflict
	}

	appointment := &entity.Appointment{
		UserID:          userID,
		DoctorID:        req.DoctorID,
		AppointmentDate: date,
		StartTime:       start,
		EndTime:         end,
		Status:          entity.AppointmentStatusPending,
		Notes:           req.Notes,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isSerializationFailure(err) {
			return nil, ErrSlotConflict
		}
		u.log.Warnf("Failed to insert appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		if isSerializationFailure(err) {
			return nil, ErrSlotConflict
		}
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%s, doctor=%s, date=%s, slot=%s-%s", appointment.ID, req.DoctorID, req.AppointmentDate, start, end)
	return converter.AppointmentToResponse(appointment), nil
}

// Transition drives the appointment state machine. The write is conditional
// on the status the actor observed, so a racing transition loses with
// ErrStatusConflict instead of silently overwriting.
func (u *appointmentUsecase) Transition(ctx context.Context, appointmentID uuid.UUID, target entity.AppointmentStatus) (*dto.AppointmentResponse, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	role, ok := middleware.GetRoleFromContext(ctx)
	if !ok {
		return nil, errors.New("role not found in context")
	}

	if !target.IsValid() {
		return nil, ErrInvalidTransition
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if !appointment.Status.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}
	if !appointment.TransitionPermitted(target, actorID, role) {
		return nil, ErrForbidden
	}

	affected, err := u.appointmentRepo.UpdateStatusIfCurrent(u.db.WithContext(ctx), appointmentID, appointment.Status, target)
	if err != nil {
		u.log.Warnf("Failed to transition appointment %s to %s: %+v", appointmentID, target, err)
		return nil, err
	}
	if affected == 0 {
		// Someone else won the race; tell the caller their view was stale.
		current, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, ErrAppointmentNotFound
		}
		return nil, ErrStatusConflict
	}

	appointment.Status = target

	if role == entity.RoleAdmin {
		_ = u.auditService.Record(ctx, actorID, auditActionForTransition(target), fmt.Sprintf("appointment=%s", appointmentID))
	}

	u.log.Infof("Appointment %s transitioned to %s by %s (%s)", appointmentID, target, actorID, role)
	return converter.AppointmentToResponse(appointment), nil
}

// ListForDoctor returns the doctor's appointments, date-ordered. Doctors may
// only list their own; admins may list any doctor's.
func (u *appointmentUsecase) ListForDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.ListAppointmentsRequest) (*dto.AppointmentListResponse, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	role, _ := middleware.GetRoleFromContext(ctx)
	if role != entity.RoleAdmin && actorID != doctorID {
		return nil, ErrForbidden
	}

	filter, err := listFilter(req)
	if err != nil {
		return nil, err
	}

	total, err := u.appointmentRepo.CountByDoctorID(u.db.WithContext(ctx), doctorID, filter)
	if err != nil {
		u.log.Warnf("Failed to count appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID, filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        int(total),
	}, nil
}

// ListForUser returns the logged-in user's own appointments.
func (u *appointmentUsecase) ListForUser(ctx context.Context, req *dto.ListAppointmentsRequest) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	filter, err := listFilter(req)
	if err != nil {
		return nil, err
	}

	total, err := u.appointmentRepo.CountByUserID(u.db.WithContext(ctx), userID, filter)
	if err != nil {
		u.log.Warnf("Failed to count appointments for user %s: %+v", userID, err)
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByUserID(u.db.WithContext(ctx), userID, filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        int(total),
	}, nil
}

// listFilter validates the optional date range and caps page size.
func listFilter(req *dto.ListAppointmentsRequest) (*entity.AppointmentFilter, error) {
	filter := &entity.AppointmentFilter{Limit: 50}
	if req == nil {
		return filter, nil
	}

	for _, d := range []string{req.StartDate, req.EndDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return nil, ErrInvalidDateFormat
		}
	}

	filter.StartDate = req.StartDate
	filter.EndDate = req.EndDate
	if req.Limit > 0 {
		filter.Limit = req.Limit
	}
	filter.Offset = req.Offset
	return filter, nil
}

func auditActionForTransition(target entity.AppointmentStatus) string {
	switch target {
	case entity.AppointmentStatusConfirmed:
		return entity.AuditActionAppointmentConfirm
	case entity.AppointmentStatusCompleted:
		return entity.AuditActionAppointmentComplete
	default:
		return entity.AuditActionAppointmentCancel
	}
}
