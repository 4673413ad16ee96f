package models

import (
	"time"

	"github.com/google/uuid"
)

// LiveCard mirrors the live_cards table. Opaque to the ledger core.
type LiveCard struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CardNumber string    `gorm:"type:text;not null"`
	ExpMonth   *string   `gorm:"type:text"`
	ExpYear    *string   `gorm:"type:text"`
	BIN        *string   `gorm:"column:bin;type:text"`
	Brand      *string   `gorm:"type:text"`
	Type       *string   `gorm:"type:text"`
	Level      *string   `gorm:"type:text"`
	Bank       *string   `gorm:"type:text"`
	Country    *string   `gorm:"type:text"`
	GateUsed   *string   `gorm:"type:text"`
	FullCard   *string   `gorm:"type:text"`
	CVV        *string   `gorm:"column:cvv;type:text"`
	CreatedAt  time.Time
}

func (LiveCard) TableName() string {
	return "live_cards"
}
