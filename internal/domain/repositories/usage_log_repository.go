package repositories

import (
	"context"

	"github.com/google/uuid"
	"card-admin.backend/internal/domain/entities"
)

// UsageLogRepository defines the append-only audit trail operations.
// Entries are never updated or deleted.
type UsageLogRepository interface {
	Append(ctx context.Context, entry *entities.LedgerEntry) error
	Recent(ctx context.Context, limit int, keyID *uuid.UUID) ([]*entities.LedgerEntry, error)
}
