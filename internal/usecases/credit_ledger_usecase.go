package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"card-admin.backend/internal/domain/entities"
	domainerrors "card-admin.backend/internal/domain/errors"
	"card-admin.backend/internal/domain/repositories"
	"card-admin.backend/pkg/metrics"
)

// CreditLedgerUsecase owns all balance mutations. Each mutation and its
// usage_log entry commit in one transaction, guarded twice against
// overdraw: a per-key mutex serializes in-process callers, and the
// repository's conditional UPDATE rejects concurrent writers from other
// processes.
type CreditLedgerUsecase struct {
	keyRepo  repositories.AccessKeyRepository
	logRepo  repositories.UsageLogRepository
	uow      repositories.UnitOfWork
	notifier WebhookNotifier
	locks    *keyLocks
}

// NewCreditLedgerUsecase creates a new credit ledger usecase.
// notifier may be nil when webhook delivery is not configured.
func NewCreditLedgerUsecase(
	keyRepo repositories.AccessKeyRepository,
	logRepo repositories.UsageLogRepository,
	uow repositories.UnitOfWork,
	notifier WebhookNotifier,
) *CreditLedgerUsecase {
	return &CreditLedgerUsecase{
		keyRepo:  keyRepo,
		logRepo:  logRepo,
		uow:      uow,
		notifier: notifier,
		locks:    newKeyLocks(),
	}
}

// AddCredits tops up a key by amount. Inactive and expired keys may still
// be topped up; only deduction requires a usable key.
func (u *CreditLedgerUsecase) AddCredits(ctx context.Context, keyID uuid.UUID, amount int64) (*entities.AccessKey, error) {
	if amount <= 0 {
		return nil, domainerrors.BadRequest("amount must be positive")
	}

	lock := u.locks.forKey(keyID)
	lock.Lock()
	defer lock.Unlock()

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.keyRepo.AddCredits(txCtx, keyID, amount); err != nil {
			return err
		}
		return u.logRepo.Append(txCtx, &entities.LedgerEntry{
			KeyID:   &keyID,
			Action:  entities.ActionAddCredits,
			Details: fmt.Sprintf("Added %d credits", amount),
		})
	})
	if err != nil {
		return nil, err
	}

	metrics.CreditsAdded.Add(float64(amount))
	return u.afterMutation(ctx, keyID, entities.ActionAddCredits, amount)
}

// DeductCredits spends amount from a key. The key must be active,
// unexpired and hold at least amount credits; otherwise nothing is
// written, including no usage_log entry.
func (u *CreditLedgerUsecase) DeductCredits(ctx context.Context, keyID uuid.UUID, amount int64) (*entities.AccessKey, error) {
	if amount <= 0 {
		return nil, domainerrors.BadRequest("amount must be positive")
	}

	lock := u.locks.forKey(keyID)
	lock.Lock()
	defer lock.Unlock()

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.keyRepo.DeductCredits(txCtx, keyID, amount, time.Now()); err != nil {
			return err
		}
		return u.logRepo.Append(txCtx, &entities.LedgerEntry{
			KeyID:   &keyID,
			Action:  entities.ActionDeductCredits,
			Details: fmt.Sprintf("Deducted %d credits", amount),
		})
	})
	if err != nil {
		metrics.DeductFailures.WithLabelValues(deductFailureReason(err)).Inc()
		return nil, err
	}

	metrics.CreditsDeducted.Add(float64(amount))
	return u.afterMutation(ctx, keyID, entities.ActionDeductCredits, amount)
}

// DeductByKeyValue resolves a key by its value and deducts from it. This
// is the consumption path: callers present the key itself, not its ID.
func (u *CreditLedgerUsecase) DeductByKeyValue(ctx context.Context, keyValue string, amount int64) (*entities.AccessKey, error) {
	key, err := u.keyRepo.GetByKeyValue(ctx, keyValue)
	if err != nil {
		return nil, err
	}
	return u.DeductCredits(ctx, key.ID, amount)
}

// afterMutation reloads the key for the fresh balance and fires the
// webhook when the key opted in.
func (u *CreditLedgerUsecase) afterMutation(ctx context.Context, keyID uuid.UUID, action entities.LedgerAction, amount int64) (*entities.AccessKey, error) {
	key, err := u.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, err
	}

	if u.notifier != nil && key.WebhookEnabled {
		u.notifier.Notify(ctx, key, &BalanceEvent{
			KeyID:     key.ID,
			KeyValue:  key.KeyValue,
			Action:    action,
			Amount:    amount,
			Credits:   key.Credits,
			Timestamp: time.Now(),
		})
	}
	return key, nil
}

func deductFailureReason(err error) string {
	switch {
	case errors.Is(err, domainerrors.ErrInsufficientCredits):
		return "insufficient_credits"
	case errors.Is(err, domainerrors.ErrKeyNotUsable):
		return "key_not_usable"
	case errors.Is(err, domainerrors.ErrNotFound):
		return "not_found"
	}
	return "error"
}
