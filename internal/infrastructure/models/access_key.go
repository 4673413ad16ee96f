package models

import (
	"time"

	"github.com/google/uuid"
)

type AccessKey struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	KeyValue       string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Credits        int64     `gorm:"not null;default:0"`
	UsedCredits    int64     `gorm:"not null;default:0"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedBy      uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
	ExpiresAt      *time.Time
	WebhookEnabled bool    `gorm:"not null;default:false"`
	WebhookURL     *string `gorm:"type:text"`
	WebhookSecret  *string `gorm:"type:text"`
}

func (AccessKey) TableName() string {
	return "access_keys"
}
