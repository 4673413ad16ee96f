package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"card-admin.backend/internal/domain/entities"
	domainerrors "card-admin.backend/internal/domain/errors"
	"card-admin.backend/internal/domain/repositories"
	"card-admin.backend/pkg/crypto"
	"card-admin.backend/pkg/logger"
	"card-admin.backend/pkg/metrics"
	"card-admin.backend/pkg/utils"
)

// generateKeyValue is replaceable in tests
var generateKeyValue = crypto.GenerateAccessKey

const maxGeneratedKeyAttempts = 3

// KeyRegistryUsecase manages the access key lifecycle
type KeyRegistryUsecase struct {
	keyRepo repositories.AccessKeyRepository
	logRepo repositories.UsageLogRepository
	uow     repositories.UnitOfWork
}

// NewKeyRegistryUsecase creates a new key registry usecase
func NewKeyRegistryUsecase(
	keyRepo repositories.AccessKeyRepository,
	logRepo repositories.UsageLogRepository,
	uow repositories.UnitOfWork,
) *KeyRegistryUsecase {
	return &KeyRegistryUsecase{
		keyRepo: keyRepo,
		logRepo: logRepo,
		uow:     uow,
	}
}

// CreateKey registers a new access key with its initial balance.
// An empty input.KeyValue asks the registry to generate one; generated
// values are retried on the rare collision, caller-supplied ones are not.
// The key row and its create_key audit entry commit in one transaction.
func (u *KeyRegistryUsecase) CreateKey(ctx context.Context, createdBy uuid.UUID, input *entities.CreateKeyInput) (*entities.AccessKey, error) {
	if input.Credits < 0 {
		return nil, domainerrors.BadRequest("initial credits must not be negative")
	}
	if input.ExpiresAt != nil && !input.ExpiresAt.After(time.Now()) {
		return nil, domainerrors.BadRequest("expiry must be in the future")
	}

	generated := input.KeyValue == ""
	attempts := 1
	if generated {
		attempts = maxGeneratedKeyAttempts
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		keyValue := input.KeyValue
		if generated {
			var err error
			keyValue, err = generateKeyValue()
			if err != nil {
				return nil, domainerrors.InternalError(err)
			}
		}

		key := &entities.AccessKey{
			ID:             utils.GenerateUUIDv7(),
			KeyValue:       keyValue,
			Credits:        input.Credits,
			IsActive:       true,
			CreatedBy:      createdBy,
			CreatedAt:      time.Now(),
			ExpiresAt:      input.ExpiresAt,
			WebhookEnabled: input.WebhookEnabled,
		}
		if input.WebhookURL != "" {
			key.WebhookURL = null.StringFrom(input.WebhookURL)
		}
		if input.WebhookSecret != "" {
			key.WebhookSecret = null.StringFrom(input.WebhookSecret)
		}

		err := u.uow.Do(ctx, func(txCtx context.Context) error {
			if err := u.keyRepo.Create(txCtx, key); err != nil {
				return err
			}
			return u.logRepo.Append(txCtx, &entities.LedgerEntry{
				KeyID:   &key.ID,
				Action:  entities.ActionCreateKey,
				Details: fmt.Sprintf("Created key %s with %d credits", key.KeyValue, key.Credits),
			})
		})
		if err == nil {
			metrics.KeysCreated.Inc()
			logger.Info(ctx, "access key created")
			return key, nil
		}
		lastErr = err
		if !generated || !errors.Is(err, domainerrors.ErrDuplicateKey) {
			return nil, err
		}
	}
	return nil, lastErr
}

// GetKey returns the key by ID
func (u *KeyRegistryUsecase) GetKey(ctx context.Context, id uuid.UUID) (*entities.AccessKey, error) {
	return u.keyRepo.GetByID(ctx, id)
}

// GetKeyByValue returns the key by its key value (case-sensitive)
func (u *KeyRegistryUsecase) GetKeyByValue(ctx context.Context, keyValue string) (*entities.AccessKey, error) {
	return u.keyRepo.GetByKeyValue(ctx, keyValue)
}

// ListKeys returns all keys in insertion order
func (u *KeyRegistryUsecase) ListKeys(ctx context.Context) ([]*entities.AccessKey, error) {
	return u.keyRepo.List(ctx)
}

// DeactivateKey suspends a key. Deactivating an already inactive key is a no-op.
func (u *KeyRegistryUsecase) DeactivateKey(ctx context.Context, id uuid.UUID) error {
	return u.keyRepo.SetActive(ctx, id, false)
}

// ReactivateKey lifts a suspension. Expiry is not affected.
func (u *KeyRegistryUsecase) ReactivateKey(ctx context.Context, id uuid.UUID) error {
	return u.keyRepo.SetActive(ctx, id, true)
}

// DeleteKey removes a key permanently. The delete_key audit entry records
// the key value since the row itself is gone afterwards.
func (u *KeyRegistryUsecase) DeleteKey(ctx context.Context, id uuid.UUID) error {
	key, err := u.keyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.keyRepo.Delete(txCtx, id); err != nil {
			return err
		}
		return u.logRepo.Append(txCtx, &entities.LedgerEntry{
			KeyID:   &id,
			Action:  entities.ActionDeleteKey,
			Details: fmt.Sprintf("Deleted key %s", key.KeyValue),
		})
	})
}
