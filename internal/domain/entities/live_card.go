package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// LiveCard is opaque storage carried for the admin panel. The ledger core
// never interprets these fields.
type LiveCard struct {
	ID         uuid.UUID   `json:"id"`
	CardNumber string      `json:"cardNumber"`
	ExpMonth   null.String `json:"expMonth,omitempty"`
	ExpYear    null.String `json:"expYear,omitempty"`
	BIN        null.String `json:"bin,omitempty"`
	Brand      null.String `json:"brand,omitempty"`
	Type       null.String `json:"type,omitempty"`
	Level      null.String `json:"level,omitempty"`
	Bank       null.String `json:"bank,omitempty"`
	Country    null.String `json:"country,omitempty"`
	GateUsed   null.String `json:"gateUsed,omitempty"`
	FullCard   null.String `json:"fullCard,omitempty"`
	CVV        null.String `json:"cvv,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}
