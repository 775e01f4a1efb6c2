package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clinic-appointment-service/internal/converter"
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/delivery/http/middleware"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/domain/repository"
	"clinic-appointment-service/internal/service"
	"clinic-appointment-service/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrAccountNotFound    = errors.New("account not found")
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error)
	RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.UserResponse, error)
	RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	EnsureAdminAccount(ctx context.Context, name, email, password string) error
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	doctorRepo   repository.DoctorProfileRepository
	adminRepo    repository.AdminProfileRepository
	jwtService   *jwt.JWTService
	tokenService *service.TokenService
	auditService service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorProfileRepository,
	adminRepo repository.AdminProfileRepository,
	jwtService *jwt.JWTService,
	tokenService *service.TokenService,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		doctorRepo:   doctorRepo,
		adminRepo:    adminRepo,
		jwtService:   jwtService,
		tokenService: tokenService,
		auditService: auditService,
	}
}

// RegisterUser creates a plain user account. No profile row exists for the
// user role.
func (u *authUsecase) RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
	user, err := u.createAccount(ctx, req.Name, req.Email, req.Password, entity.RoleUser, nil)
	if err != nil {
		return nil, err
	}
	return converter.UserToResponse(user), nil
}

// RegisterDoctor creates the account and its doctor profile in one
// transaction. A doctor-role account without a profile must never persist.
func (u *authUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.UserResponse, error) {
	user, err := u.createAccount(ctx, req.Name, req.Email, req.Password, entity.RoleDoctor, func(tx *gorm.DB, user *entity.User) error {
		return u.doctorRepo.Create(tx, &entity.DoctorProfile{
			ID:             user.ID,
			Specialization: req.Specialization,
			Phone:          req.Phone,
			IsAvailable:    true,
		})
	})
	if err != nil {
		return nil, err
	}

	// Doctor accounts are provisioned by admins, so their creation is audited.
	if actorID, ok := middleware.GetUserIDFromContext(ctx); ok {
		if role, ok := middleware.GetRoleFromContext(ctx); ok && role == entity.RoleAdmin {
			_ = u.auditService.Record(ctx, actorID, entity.AuditActionDoctorCreate, fmt.Sprintf("doctor=%s email=%s", user.ID, user.Email))
		}
	}

	return converter.UserToResponse(user), nil
}

// RegisterAdmin creates the account and its admin profile in one transaction.
func (u *authUsecase) RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*dto.UserResponse, error) {
	user, err := u.createAccount(ctx, req.Name, req.Email, req.Password, entity.RoleAdmin, func(tx *gorm.DB, user *entity.User) error {
		return u.adminRepo.Create(tx, &entity.AdminProfile{ID: user.ID})
	})
	if err != nil {
		return nil, err
	}
	return converter.UserToResponse(user), nil
}

// EnsureAdminAccount seeds the configured bootstrap admin at startup. The
// admin provisioning endpoints require an admin actor, so a fresh deployment
// would otherwise have no way to mint its first one. Idempotent: an existing
// account with the email wins, including one created by a racing replica.
func (u *authUsecase) EnsureAdminAccount(ctx context.Context, name, email, password string) error {
	existing, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), email)
	if err != nil {
		u.log.Warnf("Failed to look up seed admin account: %+v", err)
		return err
	}
	if existing != nil {
		return nil
	}

	_, err = u.createAccount(ctx, name, email, password, entity.RoleAdmin, func(tx *gorm.DB, user *entity.User) error {
		return u.adminRepo.Create(tx, &entity.AdminProfile{ID: user.ID})
	})
	if errors.Is(err, ErrEmailAlreadyExists) {
		return nil
	}
	if err != nil {
		return err
	}

	u.log.Infof("Seeded admin account %s", email)
	return nil
}

func (u *authUsecase) createAccount(ctx context.Context, name, email, password string, role entity.Role, createProfile func(tx *gorm.DB, user *entity.User) error) (*entity.User, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if createProfile != nil {
		if err := createProfile(tx, user); err != nil {
			u.log.Warnf("Failed to create %s profile: %+v", role, err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokenService.Store(ctx, jwt.AccessToken, user.ID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}
	if err := u.tokenService.Store(ctx, jwt.RefreshToken, user.ID, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	if err := u.tokenService.Revoke(ctx, jwt.AccessToken, userID, accessTokenID); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}
	if refreshTokenID != "" {
		if err := u.tokenService.Revoke(ctx, jwt.RefreshToken, userID, refreshTokenID); err != nil {
			u.log.Warnf("Failed to revoke refresh token: %+v", err)
			return err
		}
	}
	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	valid, err := u.tokenService.IsValid(ctx, jwt.RefreshToken, claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, err
	}
	if !valid {
		return nil, ErrTokenRevoked
	}

	// Rotate: old refresh token is single use.
	if err := u.tokenService.Revoke(ctx, jwt.RefreshToken, claims.UserID, claims.TokenID); err != nil {
		u.log.Warnf("Failed to revoke old refresh token: %+v", err)
		return nil, err
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrAccountNotFound
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrAccountNotFound
	}

	return converter.UserToResponse(user), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isSerializationFailure checks for a PostgreSQL serialization failure, the
// outcome of losing a serializable-transaction race.
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	// PostgreSQL error code 40001 = serialization_failure
	return errors.As(err, &pgErr) && pgErr.Code == "40001"
}
