package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"card-admin.backend/internal/domain/entities"
)

// UserRepository defines operator data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	List(ctx context.Context) ([]*entities.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
