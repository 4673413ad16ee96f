package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"card-admin.backend/internal/domain/entities"
	domainerrors "card-admin.backend/internal/domain/errors"
	"card-admin.backend/internal/infrastructure/models"
)

// UsageLogRepository implements the append-only audit trail
type UsageLogRepository struct {
	db *gorm.DB
}

// NewUsageLogRepository creates a new usage log repository
func NewUsageLogRepository(db *gorm.DB) *UsageLogRepository {
	return &UsageLogRepository{db: db}
}

// Append writes one audit record. Storage failures surface as
// ErrStorageUnavailable; retry policy belongs to the caller.
func (r *UsageLogRepository) Append(ctx context.Context, entry *entities.LedgerEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	m := &models.UsageLog{
		KeyID:     entry.KeyID,
		Action:    string(entry.Action),
		Details:   entry.Details,
		Timestamp: entry.Timestamp,
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("%w: %v", domainerrors.ErrStorageUnavailable, err)
	}
	entry.ID = m.ID
	return nil
}

// Recent returns entries newest first by timestamp, insertion order breaking
// ties. A nil keyID returns entries across all keys.
func (r *UsageLogRepository) Recent(ctx context.Context, limit int, keyID *uuid.UUID) ([]*entities.LedgerEntry, error) {
	var ms []models.UsageLog
	query := GetDB(ctx, r.db).WithContext(ctx).
		Order("timestamp DESC, id DESC")
	if keyID != nil {
		query = query.Where("key_id = ?", *keyID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	entries := make([]*entities.LedgerEntry, 0, len(ms))
	for i := range ms {
		entries = append(entries, r.toEntity(&ms[i]))
	}
	return entries, nil
}

func (r *UsageLogRepository) toEntity(m *models.UsageLog) *entities.LedgerEntry {
	return &entities.LedgerEntry{
		ID:        m.ID,
		KeyID:     m.KeyID,
		Action:    entities.LedgerAction(m.Action),
		Details:   m.Details,
		Timestamp: m.Timestamp,
	}
}
