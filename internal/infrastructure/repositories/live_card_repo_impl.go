package repositories

import (
	"context"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"card-admin.backend/internal/domain/entities"
	"card-admin.backend/internal/infrastructure/models"
)

// LiveCardRepository is passthrough storage for the live_cards table.
// The ledger core never reads these rows; they exist for the admin panel.
type LiveCardRepository struct {
	db *gorm.DB
}

// NewLiveCardRepository creates a new live card repository
func NewLiveCardRepository(db *gorm.DB) *LiveCardRepository {
	return &LiveCardRepository{db: db}
}

func (r *LiveCardRepository) Create(ctx context.Context, card *entities.LiveCard) error {
	m := r.toModel(card)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	card.CreatedAt = m.CreatedAt
	return nil
}

func (r *LiveCardRepository) List(ctx context.Context) ([]*entities.LiveCard, error) {
	var ms []models.LiveCard
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	cards := make([]*entities.LiveCard, 0, len(ms))
	for i := range ms {
		cards = append(cards, r.toEntity(&ms[i]))
	}
	return cards, nil
}

func (r *LiveCardRepository) toModel(c *entities.LiveCard) *models.LiveCard {
	return &models.LiveCard{
		ID:         c.ID,
		CardNumber: c.CardNumber,
		ExpMonth:   c.ExpMonth.Ptr(),
		ExpYear:    c.ExpYear.Ptr(),
		BIN:        c.BIN.Ptr(),
		Brand:      c.Brand.Ptr(),
		Type:       c.Type.Ptr(),
		Level:      c.Level.Ptr(),
		Bank:       c.Bank.Ptr(),
		Country:    c.Country.Ptr(),
		GateUsed:   c.GateUsed.Ptr(),
		FullCard:   c.FullCard.Ptr(),
		CVV:        c.CVV.Ptr(),
		CreatedAt:  c.CreatedAt,
	}
}

func (r *LiveCardRepository) toEntity(m *models.LiveCard) *entities.LiveCard {
	return &entities.LiveCard{
		ID:         m.ID,
		CardNumber: m.CardNumber,
		ExpMonth:   null.StringFromPtr(m.ExpMonth),
		ExpYear:    null.StringFromPtr(m.ExpYear),
		BIN:        null.StringFromPtr(m.BIN),
		Brand:      null.StringFromPtr(m.Brand),
		Type:       null.StringFromPtr(m.Type),
		Level:      null.StringFromPtr(m.Level),
		Bank:       null.StringFromPtr(m.Bank),
		Country:    null.StringFromPtr(m.Country),
		GateUsed:   null.StringFromPtr(m.GateUsed),
		FullCard:   null.StringFromPtr(m.FullCard),
		CVV:        null.StringFromPtr(m.CVV),
		CreatedAt:  m.CreatedAt,
	}
}
