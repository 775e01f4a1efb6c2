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

type DoctorUsecase interface {
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	List(ctx context.Context) (*dto.DoctorListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type doctorUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	doctorRepo      repository.DoctorProfileRepository
	userRepo        repository.UserRepository
	identityUsecase IdentityUsecase
	tokenService    *service.TokenService
	auditService    service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	userRepo repository.UserRepository,
	identityUsecase IdentityUsecase,
	tokenService *service.TokenService,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:              db,
		log:             log,
		doctorRepo:      doctorRepo,
		userRepo:        userRepo,
		identityUsecase: identityUsecase,
		tokenService:    tokenService,
		auditService:    auditService,
	}
}

func (u *doctorUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorProfileToResponse(doctor), nil
}

func (u *doctorUsecase) List(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorProfilesToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

// Update applies partial changes to a doctor. Admin only; the token claim is
// re-checked against the account row so a stale admin token cannot mutate.
// Name lives on the account row, the rest on the profile, so both writes
// share one transaction.
func (u *doctorUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	if err := u.requireAdminActor(ctx); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.Specialization != "" {
		doctor.Specialization = req.Specialization
	}
	if req.Phone != "" {
		doctor.Phone = req.Phone
	}
	if req.IsAvailable != nil {
		doctor.IsAvailable = *req.IsAvailable
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor %s: %+v", id, err)
		return nil, err
	}

	if req.Name != "" && req.Name != doctor.User.Name {
		user := doctor.User
		user.Name = req.Name
		if err := u.userRepo.Update(tx, &user); err != nil {
			u.log.Warnf("Failed to update doctor account %s: %+v", id, err)
			return nil, err
		}
		doctor.User = user
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.recordAudit(ctx, entity.AuditActionDoctorUpdate, fmt.Sprintf("doctor=%s", id))

	return converter.DoctorProfileToResponse(doctor), nil
}

// Delete removes the doctor's account; the profile, schedules and sessions
// go with it. Appointments and prescriptions keep their rows for history.
func (u *doctorUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.requireAdminActor(ctx); err != nil {
		return err
	}

	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	affected, err := u.userRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrDoctorNotFound
	}

	// A deleted doctor must not keep a usable session.
	if err := u.tokenService.RevokeAll(ctx, id); err != nil {
		u.log.Warnf("Failed to revoke tokens for deleted doctor %s: %+v", id, err)
	}

	u.recordAudit(ctx, entity.AuditActionDoctorDelete, fmt.Sprintf("doctor=%s", id))

	u.log.Infof("Doctor %s deleted", id)
	return nil
}

// requireAdminActor verifies the acting account still holds the admin role
// in the store, not just in its token claims.
func (u *doctorUsecase) requireAdminActor(ctx context.Context) error {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}
	if _, err := u.identityUsecase.RequireAdmin(ctx, actorID); err != nil {
		return err
	}
	return nil
}

func (u *doctorUsecase) recordAudit(ctx context.Context, action, details string) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return
	}
	if role, ok := middleware.GetRoleFromContext(ctx); !ok || role != entity.RoleAdmin {
		return
	}
	_ = u.auditService.Record(ctx, actorID, action, details)
}
