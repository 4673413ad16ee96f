package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	LastLogin    *time.Time
}

func (User) TableName() string {
	return "users"
}
