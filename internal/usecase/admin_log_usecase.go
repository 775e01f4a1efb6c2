package usecase

import (
	"context"
	"errors"

	"clinic-appointment-service/internal/converter"
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrAdminLogNotFound = errors.New("admin log not found")

// AdminLogUsecase is the read side of the audit trail. Entries are append
// only; there is no update or delete.
type AdminLogUsecase interface {
	List(ctx context.Context, limit, offset int) (*dto.AdminLogListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AdminLogResponse, error)
}

type adminLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	adminLogRepo repository.AdminLogRepository
}

func NewAdminLogUsecase(db *gorm.DB, log *logrus.Logger, adminLogRepo repository.AdminLogRepository) AdminLogUsecase {
	return &adminLogUsecase{
		db:           db,
		log:          log,
		adminLogRepo: adminLogRepo,
	}
}

// List returns audit entries newest first. Route access is restricted to
// admins by middleware.
func (u *adminLogUsecase) List(ctx context.Context, limit, offset int) (*dto.AdminLogListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	total, err := u.adminLogRepo.Count(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to count admin logs: %+v", err)
		return nil, err
	}

	logs, err := u.adminLogRepo.FindAll(u.db.WithContext(ctx), limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list admin logs: %+v", err)
		return nil, err
	}

	return &dto.AdminLogListResponse{
		Logs:  converter.AdminLogsToResponses(logs),
		Total: int(total),
	}, nil
}

func (u *adminLogUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AdminLogResponse, error) {
	entry, err := u.adminLogRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find admin log %s: %+v", id, err)
		return nil, err
	}
	if entry == nil {
		return nil, ErrAdminLogNotFound
	}

	return converter.AdminLogToResponse(entry), nil
}
