package usecases

import (
	"context"

	"github.com/google/uuid"
	"card-admin.backend/internal/domain/entities"
	domainerrors "card-admin.backend/internal/domain/errors"
	"card-admin.backend/internal/domain/repositories"
)

const defaultAuditLimit = 50

// AuditLogUsecase reads and appends the append-only usage trail
type AuditLogUsecase struct {
	logRepo repositories.UsageLogRepository
}

// NewAuditLogUsecase creates a new audit log usecase
func NewAuditLogUsecase(logRepo repositories.UsageLogRepository) *AuditLogUsecase {
	return &AuditLogUsecase{logRepo: logRepo}
}

// Append records one audit entry. Actions outside the documented
// vocabulary are rejected before touching storage.
func (u *AuditLogUsecase) Append(ctx context.Context, keyID *uuid.UUID, action entities.LedgerAction, details string) (*entities.LedgerEntry, error) {
	if !action.Valid() {
		return nil, domainerrors.BadRequest("unknown audit action")
	}

	entry := &entities.LedgerEntry{
		KeyID:   keyID,
		Action:  action,
		Details: details,
	}
	if err := u.logRepo.Append(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Recent returns up to limit entries, newest first, optionally scoped to
// one key. A non-positive limit falls back to the default page size.
func (u *AuditLogUsecase) Recent(ctx context.Context, limit int, keyID *uuid.UUID) ([]*entities.LedgerEntry, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	return u.logRepo.Recent(ctx, limit, keyID)
}
