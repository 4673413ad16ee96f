package repositories

import (
	"context"

	"card-admin.backend/internal/domain/entities"
)

// LiveCardRepository is opaque passthrough storage for the admin panel.
type LiveCardRepository interface {
	Create(ctx context.Context, card *entities.LiveCard) error
	List(ctx context.Context) ([]*entities.LiveCard, error)
}
