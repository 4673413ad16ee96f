package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"card-admin.backend/internal/domain/entities"
)

// AccessKeyRepository defines access key data operations.
//
// AddCredits and DeductCredits are conditional single-statement updates:
// the balance check and the write happen atomically at the storage level so
// concurrent mutations on the same key can never jointly overdraw it.
type AccessKeyRepository interface {
	Create(ctx context.Context, key *entities.AccessKey) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.AccessKey, error)
	GetByKeyValue(ctx context.Context, keyValue string) (*entities.AccessKey, error)
	List(ctx context.Context) ([]*entities.AccessKey, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddCredits(ctx context.Context, id uuid.UUID, amount int64) error
	DeductCredits(ctx context.Context, id uuid.UUID, amount int64, now time.Time) error
}
