package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"card-admin.backend/internal/domain/entities"
	"card-admin.backend/internal/usecases"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock AccessKeyRepository
type MockAccessKeyRepository struct {
	mock.Mock
}

func (m *MockAccessKeyRepository) Create(ctx context.Context, key *entities.AccessKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockAccessKeyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.AccessKey, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AccessKey), args.Error(1)
}

func (m *MockAccessKeyRepository) GetByKeyValue(ctx context.Context, keyValue string) (*entities.AccessKey, error) {
	args := m.Called(ctx, keyValue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AccessKey), args.Error(1)
}

func (m *MockAccessKeyRepository) List(ctx context.Context) ([]*entities.AccessKey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.AccessKey), args.Error(1)
}

func (m *MockAccessKeyRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockAccessKeyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAccessKeyRepository) AddCredits(ctx context.Context, id uuid.UUID, amount int64) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

func (m *MockAccessKeyRepository) DeductCredits(ctx context.Context, id uuid.UUID, amount int64, now time.Time) error {
	args := m.Called(ctx, id, amount, now)
	return args.Error(0)
}

// Mock UsageLogRepository
type MockUsageLogRepository struct {
	mock.Mock
}

func (m *MockUsageLogRepository) Append(ctx context.Context, entry *entities.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockUsageLogRepository) Recent(ctx context.Context, limit int, keyID *uuid.UUID) ([]*entities.LedgerEntry, error) {
	args := m.Called(ctx, limit, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LedgerEntry), args.Error(1)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

// Mock LiveCardRepository
type MockLiveCardRepository struct {
	mock.Mock
}

func (m *MockLiveCardRepository) Create(ctx context.Context, card *entities.LiveCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockLiveCardRepository) List(ctx context.Context) ([]*entities.LiveCard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LiveCard), args.Error(1)
}

// Mock WebhookNotifier
type MockWebhookNotifier struct {
	mock.Mock
}

func (m *MockWebhookNotifier) Notify(ctx context.Context, key *entities.AccessKey, event *usecases.BalanceEvent) {
	m.Called(ctx, key, event)
}
