package usecase

import (
	"context"
	"errors"
	"fmt"

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
	ErrPrescriptionNotFound   = errors.New("prescription not found")
	ErrAppointmentNotEligible = errors.New("appointment must be confirmed or completed")
	ErrOwnershipMismatch      = errors.New("doctor or user does not match the appointment")
	ErrNotAppointmentDoctor   = errors.New("only the appointment's doctor may prescribe")
	ErrNotPrescriptionViewer  = errors.New("not permitted to view this prescription")
)

type PrescriptionUsecase interface {
	Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PrescriptionResponse, error)
	ListByAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.PrescriptionListResponse, error)
	ListForUser(ctx context.Context) (*dto.PrescriptionListResponse, error)
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	appointmentRepo  repository.AppointmentRepository
	identityUsecase  IdentityUsecase
	auditService     service.AuditService
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	appointmentRepo repository.AppointmentRepository,
	identityUsecase IdentityUsecase,
	auditService service.AuditService,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		appointmentRepo:  appointmentRepo,
		identityUsecase:  identityUsecase,
		auditService:     auditService,
	}
}

// Create attaches a prescription to an appointment. Only the appointment's
// own doctor or an admin may prescribe, and only once the appointment has
// reached confirmed or completed. DoctorID and UserID on the request are optional;
// when present they must agree with the appointment, and either way the
// stored row takes its values from the appointment itself.
func (u *prescriptionUsecase) Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	role, _ := middleware.GetRoleFromContext(ctx)

	// Claims say who the actor is; the identity model is the authority on
	// whether the account still holds the doctor role.
	var prescriberID uuid.UUID
	if role != entity.RoleAdmin {
		doctor, err := u.identityUsecase.RequireDoctor(ctx, actorID)
		if err != nil {
			return nil, err
		}
		prescriberID = doctor.ID
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if appointment.Status != entity.AppointmentStatusConfirmed && appointment.Status != entity.AppointmentStatusCompleted {
		return nil, ErrAppointmentNotEligible
	}
	if role != entity.RoleAdmin && prescriberID != appointment.DoctorID {
		return nil, ErrNotAppointmentDoctor
	}
	if req.DoctorID != uuid.Nil && req.DoctorID != appointment.DoctorID {
		return nil, ErrOwnershipMismatch
	}
	if req.UserID != uuid.Nil && req.UserID != appointment.UserID {
		return nil, ErrOwnershipMismatch
	}

	prescription := &entity.Prescription{
		AppointmentID:      appointment.ID,
		DoctorID:           appointment.DoctorID,
		UserID:             appointment.UserID,
		Diagnosis:          req.Diagnosis,
		InteractionDetails: req.InteractionDetails,
		Medicines:          req.Medicines,
		DosageInstructions: req.DosageInstructions,
	}

	if err := u.prescriptionRepo.Create(tx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription for appointment %s: %+v", req.AppointmentID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if role == entity.RoleAdmin {
		_ = u.auditService.Record(ctx, actorID, entity.AuditActionPrescriptionCreate, fmt.Sprintf("prescription=%s appointment=%s", prescription.ID, appointment.ID))
	}

	u.log.Infof("Prescription %s created for appointment %s", prescription.ID, appointment.ID)
	return converter.PrescriptionToResponse(prescription), nil
}

// GetByID returns one prescription. Visible to the prescribing doctor, the
// patient it belongs to, and admins.
func (u *prescriptionUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PrescriptionResponse, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	prescription, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", id, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	role, _ := middleware.GetRoleFromContext(ctx)
	if role != entity.RoleAdmin && actorID != prescription.DoctorID && actorID != prescription.UserID {
		return nil, ErrNotPrescriptionViewer
	}

	return converter.PrescriptionToResponse(prescription), nil
}

// ListByAppointment returns an appointment's prescriptions, same visibility
// rule as GetByID but decided against the appointment.
func (u *prescriptionUsecase) ListByAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.PrescriptionListResponse, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	role, _ := middleware.GetRoleFromContext(ctx)
	if role != entity.RoleAdmin && actorID != appointment.DoctorID && actorID != appointment.UserID {
		return nil, ErrNotPrescriptionViewer
	}

	prescriptions, err := u.prescriptionRepo.FindByAppointmentID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions for appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponses(prescriptions),
		Total:         len(prescriptions),
	}, nil
}

// ListForUser returns the logged-in user's own prescription history.
func (u *prescriptionUsecase) ListForUser(ctx context.Context) (*dto.PrescriptionListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	prescriptions, err := u.prescriptionRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponses(prescriptions),
		Total:         len(prescriptions),
	}, nil
}
