package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"card-admin.backend/internal/domain/entities"
	domainerrors "card-admin.backend/internal/domain/errors"
	"card-admin.backend/internal/domain/repositories"
	"card-admin.backend/pkg/crypto"
	"card-admin.backend/pkg/jwt"
	"card-admin.backend/pkg/logger"
	"card-admin.backend/pkg/metrics"
	"card-admin.backend/pkg/utils"
)

// AuthUsecase handles operator authentication and management
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	logRepo    repositories.UsageLogRepository
	uow        repositories.UnitOfWork
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	logRepo repositories.UsageLogRepository,
	uow repositories.UnitOfWork,
	jwtService *jwt.JWTService,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		logRepo:    logRepo,
		uow:        uow,
		jwtService: jwtService,
	}
}

// Authenticate verifies operator credentials and issues a token.
// Unknown usernames and bad passwords are indistinguishable to the caller.
func (u *AuthUsecase) Authenticate(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			metrics.LoginAttempts.WithLabelValues("rejected").Inc()
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		metrics.LoginAttempts.WithLabelValues("rejected").Inc()
		return nil, domainerrors.ErrInvalidCredentials
	}

	now := time.Now()
	if err := u.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		logger.Warn(ctx, "last_login update failed", zap.Error(err))
	} else {
		user.LastLogin.SetValid(now)
	}

	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Username, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	metrics.LoginAttempts.WithLabelValues("ok").Inc()
	return &entities.AuthResponse{
		AccessToken: pair.AccessToken,
		User:        user,
	}, nil
}

// CreateUser registers a new operator. The user row and its create_user
// audit entry commit together; the entry carries no key reference.
func (u *AuthUsecase) CreateUser(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Username:     input.Username,
		PasswordHash: passwordHash,
		IsAdmin:      input.IsAdmin,
		CreatedAt:    time.Now(),
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Create(txCtx, user); err != nil {
			return err
		}
		return u.logRepo.Append(txCtx, &entities.LedgerEntry{
			Action:  entities.ActionCreateUser,
			Details: fmt.Sprintf("Created user %s", user.Username),
		})
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns all operators
func (u *AuthUsecase) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return u.userRepo.List(ctx)
}

// GetUserByID returns one operator
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// RequireAdmin gates privileged operations
func (u *AuthUsecase) RequireAdmin(user *entities.User) error {
	if user == nil || !user.IsAdmin {
		return domainerrors.ErrForbidden
	}
	return nil
}

// EnsureBootstrapAdmin creates the initial admin account when no operator
// with that username exists yet. Called once at startup; never reachable
// from the login path.
func (u *AuthUsecase) EnsureBootstrapAdmin(ctx context.Context, username, password string) error {
	_, err := u.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}

	_, err = u.CreateUser(ctx, &entities.CreateUserInput{
		Username: username,
		Password: password,
		IsAdmin:  true,
	})
	if err != nil {
		return err
	}
	logger.Info(ctx, "bootstrap admin created", zap.String("username", username))
	return nil
}
