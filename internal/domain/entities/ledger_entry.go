package entities

import (
	"time"

	"github.com/google/uuid"
)

// LedgerAction is the closed vocabulary of auditable actions.
type LedgerAction string

const (
	ActionCreateKey     LedgerAction = "create_key"
	ActionAddCredits    LedgerAction = "add_credits"
	ActionDeductCredits LedgerAction = "deduct_credits"
	ActionDeleteKey     LedgerAction = "delete_key"
	ActionCreateUser    LedgerAction = "create_user"
)

// Valid reports whether the action belongs to the documented vocabulary.
func (a LedgerAction) Valid() bool {
	switch a {
	case ActionCreateKey, ActionAddCredits, ActionDeductCredits, ActionDeleteKey, ActionCreateUser:
		return true
	}
	return false
}

// LedgerEntry is one immutable audit record. KeyID is nil for
// key-independent actions such as operator creation.
type LedgerEntry struct {
	ID        int64        `json:"id"`
	KeyID     *uuid.UUID   `json:"keyId,omitempty"`
	Action    LedgerAction `json:"action"`
	Details   string       `json:"details"`
	Timestamp time.Time    `json:"timestamp"`
}
