package usecase

import (
	"context"
	"errors"
	"fmt"

	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrRoleMismatch = errors.New("account does not hold the required role")

// RoleResolution is the answer to "who is acting and as what role". Exactly
// one of Doctor/Admin is set for those roles; both are nil for a plain user.
type RoleResolution struct {
	AccountID uuid.UUID
	Role      entity.Role
	Doctor    *entity.DoctorProfile
	Admin     *entity.AdminProfile
}

type IdentityUsecase interface {
	ResolveRole(ctx context.Context, accountID uuid.UUID) (*RoleResolution, error)
	RequireDoctor(ctx context.Context, accountID uuid.UUID) (*entity.DoctorProfile, error)
	RequireAdmin(ctx context.Context, accountID uuid.UUID) (*entity.AdminProfile, error)
}

type identityUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	userRepo repository.UserRepository
}

func NewIdentityUsecase(db *gorm.DB, log *logrus.Logger, userRepo repository.UserRepository) IdentityUsecase {
	return &identityUsecase{
		db:       db,
		log:      log,
		userRepo: userRepo,
	}
}

// ResolveRole loads the account and, for doctor/admin roles, its profile.
// Registration writes account and profile in one transaction, so a missing
// profile for a role-bearing account is reported as corruption, not mapped
// to a caller error.
func (u *identityUsecase) ResolveRole(ctx context.Context, accountID uuid.UUID) (*RoleResolution, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), accountID)
	if err != nil {
		u.log.Warnf("Failed to find account %s: %+v", accountID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrAccountNotFound
	}

	resolution := &RoleResolution{
		AccountID: user.ID,
		Role:      user.Role,
	}

	switch user.Role {
	case entity.RoleDoctor:
		if user.DoctorProfile == nil {
			return nil, fmt.Errorf("doctor account %s has no doctor profile", accountID)
		}
		user.DoctorProfile.User = *user
		resolution.Doctor = user.DoctorProfile
	case entity.RoleAdmin:
		if user.AdminProfile == nil {
			return nil, fmt.Errorf("admin account %s has no admin profile", accountID)
		}
		resolution.Admin = user.AdminProfile
	}

	return resolution, nil
}

// RequireDoctor resolves the account and fails with ErrRoleMismatch when it
// is not a doctor.
func (u *identityUsecase) RequireDoctor(ctx context.Context, accountID uuid.UUID) (*entity.DoctorProfile, error) {
	resolution, err := u.ResolveRole(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if resolution.Role != entity.RoleDoctor {
		return nil, ErrRoleMismatch
	}
	return resolution.Doctor, nil
}

// RequireAdmin resolves the account and fails with ErrRoleMismatch when it
// is not an admin.
func (u *identityUsecase) RequireAdmin(ctx context.Context, accountID uuid.UUID) (*entity.AdminProfile, error) {
	resolution, err := u.ResolveRole(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if resolution.Role != entity.RoleAdmin {
		return nil, ErrRoleMismatch
	}
	return resolution.Admin, nil
}
