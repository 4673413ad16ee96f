package handlers

import (
	"context"

	"github.com/google/uuid"
	"card-admin.backend/internal/domain/entities"
)

type authServiceStub struct {
	authenticateFn func(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	createUserFn   func(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error)
	listUsersFn    func(ctx context.Context) ([]*entities.User, error)
	getUserByIDFn  func(ctx context.Context, id uuid.UUID) (*entities.User, error)
}

func (s authServiceStub) Authenticate(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	return s.authenticateFn(ctx, input)
}
func (s authServiceStub) CreateUser(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	return s.createUserFn(ctx, input)
}
func (s authServiceStub) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return s.listUsersFn(ctx)
}
func (s authServiceStub) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return s.getUserByIDFn(ctx, id)
}

type keyRegistryStub struct {
	createKeyFn  func(ctx context.Context, createdBy uuid.UUID, input *entities.CreateKeyInput) (*entities.AccessKey, error)
	getKeyFn     func(ctx context.Context, id uuid.UUID) (*entities.AccessKey, error)
	listKeysFn   func(ctx context.Context) ([]*entities.AccessKey, error)
	deactivateFn func(ctx context.Context, id uuid.UUID) error
	reactivateFn func(ctx context.Context, id uuid.UUID) error
	deleteKeyFn  func(ctx context.Context, id uuid.UUID) error
}

func (s keyRegistryStub) CreateKey(ctx context.Context, createdBy uuid.UUID, input *entities.CreateKeyInput) (*entities.AccessKey, error) {
	return s.createKeyFn(ctx, createdBy, input)
}
func (s keyRegistryStub) GetKey(ctx context.Context, id uuid.UUID) (*entities.AccessKey, error) {
	return s.getKeyFn(ctx, id)
}
func (s keyRegistryStub) ListKeys(ctx context.Context) ([]*entities.AccessKey, error) {
	return s.listKeysFn(ctx)
}
func (s keyRegistryStub) DeactivateKey(ctx context.Context, id uuid.UUID) error {
	return s.deactivateFn(ctx, id)
}
func (s keyRegistryStub) ReactivateKey(ctx context.Context, id uuid.UUID) error {
	return s.reactivateFn(ctx, id)
}
func (s keyRegistryStub) DeleteKey(ctx context.Context, id uuid.UUID) error {
	return s.deleteKeyFn(ctx, id)
}

type creditLedgerStub struct {
	addFn     func(ctx context.Context, keyID uuid.UUID, amount int64) (*entities.AccessKey, error)
	deductFn  func(ctx context.Context, keyID uuid.UUID, amount int64) (*entities.AccessKey, error)
	consumeFn func(ctx context.Context, keyValue string, amount int64) (*entities.AccessKey, error)
}

func (s creditLedgerStub) AddCredits(ctx context.Context, keyID uuid.UUID, amount int64) (*entities.AccessKey, error) {
	return s.addFn(ctx, keyID, amount)
}
func (s creditLedgerStub) DeductCredits(ctx context.Context, keyID uuid.UUID, amount int64) (*entities.AccessKey, error) {
	return s.deductFn(ctx, keyID, amount)
}
func (s creditLedgerStub) DeductByKeyValue(ctx context.Context, keyValue string, amount int64) (*entities.AccessKey, error) {
	return s.consumeFn(ctx, keyValue, amount)
}

type auditLogStub struct {
	recentFn func(ctx context.Context, limit int, keyID *uuid.UUID) ([]*entities.LedgerEntry, error)
}

func (s auditLogStub) Recent(ctx context.Context, limit int, keyID *uuid.UUID) ([]*entities.LedgerEntry, error) {
	return s.recentFn(ctx, limit, keyID)
}

type liveCardStub struct {
	createFn func(ctx context.Context, card *entities.LiveCard) (*entities.LiveCard, error)
	listFn   func(ctx context.Context) ([]*entities.LiveCard, error)
}

func (s liveCardStub) Create(ctx context.Context, card *entities.LiveCard) (*entities.LiveCard, error) {
	return s.createFn(ctx, card)
}
func (s liveCardStub) List(ctx context.Context) ([]*entities.LiveCard, error) {
	return s.listFn(ctx)
}
