package usecases

import (
	"context"
	"time"

	"card-admin.backend/internal/domain/entities"
	domainerrors "card-admin.backend/internal/domain/errors"
	"card-admin.backend/internal/domain/repositories"
	"card-admin.backend/pkg/utils"
)

// LiveCardUsecase is a passthrough over the live_cards store. The columns
// are opaque to the core; nothing here interprets them.
type LiveCardUsecase struct {
	cardRepo repositories.LiveCardRepository
}

// NewLiveCardUsecase creates a new live card usecase
func NewLiveCardUsecase(cardRepo repositories.LiveCardRepository) *LiveCardUsecase {
	return &LiveCardUsecase{cardRepo: cardRepo}
}

// Create stores one card record
func (u *LiveCardUsecase) Create(ctx context.Context, card *entities.LiveCard) (*entities.LiveCard, error) {
	if card.CardNumber == "" {
		return nil, domainerrors.BadRequest("card number is required")
	}
	card.ID = utils.GenerateUUIDv7()
	card.CreatedAt = time.Now()
	if err := u.cardRepo.Create(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// List returns all cards, newest first
func (u *LiveCardUsecase) List(ctx context.Context) ([]*entities.LiveCard, error) {
	return u.cardRepo.List(ctx)
}
