package service

import (
	"context"

	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService appends admin_logs entries for privileged mutations.
// Writes are best-effort: they run on the root DB handle, never inside the
// caller's transaction, so a failed log entry cannot roll back the mutation
// it describes.
type AuditService interface {
	Record(ctx context.Context, adminID uuid.UUID, action string, details string) error
}

type auditService struct {
	db           *gorm.DB
	log          *logrus.Logger
	adminLogRepo repository.AdminLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, adminLogRepo repository.AdminLogRepository) AuditService {
	return &auditService{
		db:           db,
		log:          log,
		adminLogRepo: adminLogRepo,
	}
}

// Record appends one entry. A failure is logged at warn level and returned;
// callers treat it as a warning-level outcome, not an abort.
func (s *auditService) Record(ctx context.Context, adminID uuid.UUID, action string, details string) error {
	entry := &entity.AdminLog{
		AdminID: adminID,
		Action:  action,
		Details: details,
	}

	if err := s.adminLogRepo.Create(s.db.WithContext(ctx), entry); err != nil {
		s.log.Warnf("Failed to write admin log (action=%s, admin=%s): %+v", action, adminID, err)
		return err
	}

	return nil
}
