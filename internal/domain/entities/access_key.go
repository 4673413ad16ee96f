package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// AccessKey represents a prepaid access key backed by a credit balance.
type AccessKey struct {
	ID             uuid.UUID   `json:"id"`
	KeyValue       string      `json:"keyValue"`
	Credits        int64       `json:"credits"`
	UsedCredits    int64       `json:"usedCredits"`
	IsActive       bool        `json:"isActive"`
	CreatedBy      uuid.UUID   `json:"createdBy"`
	CreatedAt      time.Time   `json:"createdAt"`
	ExpiresAt      *time.Time  `json:"expiresAt,omitempty"`
	WebhookEnabled bool        `json:"webhookEnabled"`
	WebhookURL     null.String `json:"webhookUrl,omitempty"`
	WebhookSecret  null.String `json:"-"`
}

// Expired reports whether the key's expiry has passed at the given instant.
// Keys without an expiry never expire.
func (k *AccessKey) Expired(now time.Time) bool {
	return k.ExpiresAt != nil && !now.Before(*k.ExpiresAt)
}

// Usable reports whether the key may be deducted from: active and unexpired.
func (k *AccessKey) Usable(now time.Time) bool {
	return k.IsActive && !k.Expired(now)
}

// CreateKeyInput represents input for creating an access key.
// An empty KeyValue asks the registry to generate one.
type CreateKeyInput struct {
	KeyValue       string     `json:"keyValue"`
	Credits        int64      `json:"credits"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	WebhookEnabled bool       `json:"webhookEnabled"`
	WebhookURL     string     `json:"webhookUrl,omitempty"`
	WebhookSecret  string     `json:"webhookSecret,omitempty"`
}
