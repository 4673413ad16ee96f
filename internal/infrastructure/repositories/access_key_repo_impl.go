package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"card-admin.backend/internal/domain/entities"
	domainerrors "card-admin.backend/internal/domain/errors"
	"card-admin.backend/internal/infrastructure/models"
)

// AccessKeyRepository implements access key data operations
type AccessKeyRepository struct {
	db *gorm.DB
}

// NewAccessKeyRepository creates a new access key repository
func NewAccessKeyRepository(db *gorm.DB) *AccessKeyRepository {
	return &AccessKeyRepository{db: db}
}

// Create inserts a new access key. The key_value unique index is the
// authoritative duplicate guard.
func (r *AccessKeyRepository) Create(ctx context.Context, key *entities.AccessKey) error {
	m := r.toModel(key)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateKey
		}
		return err
	}
	key.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets an access key by ID
func (r *AccessKeyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.AccessKey, error) {
	var m models.AccessKey
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByKeyValue gets an access key by its token value (case-sensitive exact match)
func (r *AccessKeyRepository) GetByKeyValue(ctx context.Context, keyValue string) (*entities.AccessKey, error) {
	var m models.AccessKey
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("key_value = ?", keyValue).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// List lists all access keys in insertion order
func (r *AccessKeyRepository) List(ctx context.Context) ([]*entities.AccessKey, error) {
	var ms []models.AccessKey
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.AccessKey, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

// SetActive flips the is_active flag. Idempotent: writing the current value
// is not an error.
func (r *AccessKeyRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.AccessKey{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes an access key row
func (r *AccessKeyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.AccessKey{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// AddCredits increments the balance in a single statement
func (r *AccessKeyRepository) AddCredits(ctx context.Context, id uuid.UUID, amount int64) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.AccessKey{}).
		Where("id = ?", id).
		Update("credits", gorm.Expr("credits + ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeductCredits decrements the balance with the guard and the write in one
// conditional statement: the row is touched only when the key is active,
// unexpired, and holds at least amount credits. Two concurrent deductions can
// therefore never jointly overdraw the balance.
func (r *AccessKeyRepository) DeductCredits(ctx context.Context, id uuid.UUID, amount int64, now time.Time) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.AccessKey{}).
		Where("id = ? AND credits >= ? AND is_active = ? AND (expires_at IS NULL OR expires_at > ?)",
			id, amount, true, now).
		Updates(map[string]interface{}{
			"credits":      gorm.Expr("credits - ?", amount),
			"used_credits": gorm.Expr("used_credits + ?", amount),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.classifyDeductFailure(ctx, id, now)
	}
	return nil
}

// classifyDeductFailure re-reads the key to report why the conditional
// update matched nothing.
func (r *AccessKeyRepository) classifyDeductFailure(ctx context.Context, id uuid.UUID, now time.Time) error {
	key, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !key.Usable(now) {
		return domainerrors.ErrKeyNotUsable
	}
	return domainerrors.ErrInsufficientCredits
}

func (r *AccessKeyRepository) toModel(k *entities.AccessKey) *models.AccessKey {
	m := &models.AccessKey{
		ID:             k.ID,
		KeyValue:       k.KeyValue,
		Credits:        k.Credits,
		UsedCredits:    k.UsedCredits,
		IsActive:       k.IsActive,
		CreatedBy:      k.CreatedBy,
		CreatedAt:      k.CreatedAt,
		ExpiresAt:      k.ExpiresAt,
		WebhookEnabled: k.WebhookEnabled,
	}
	if k.WebhookURL.Valid {
		m.WebhookURL = &k.WebhookURL.String
	}
	if k.WebhookSecret.Valid {
		m.WebhookSecret = &k.WebhookSecret.String
	}
	return m
}

func (r *AccessKeyRepository) toEntity(m *models.AccessKey) *entities.AccessKey {
	k := &entities.AccessKey{
		ID:             m.ID,
		KeyValue:       m.KeyValue,
		Credits:        m.Credits,
		UsedCredits:    m.UsedCredits,
		IsActive:       m.IsActive,
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt,
		ExpiresAt:      m.ExpiresAt,
		WebhookEnabled: m.WebhookEnabled,
	}
	if m.WebhookURL != nil {
		k.WebhookURL.SetValid(*m.WebhookURL)
	}
	if m.WebhookSecret != nil {
		k.WebhookSecret.SetValid(*m.WebhookSecret)
	}
	return k
}

// isUniqueViolation detects unique index violations from the sqlite and
// postgres drivers.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
