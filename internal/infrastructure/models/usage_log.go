package models

import (
	"time"

	"github.com/google/uuid"
)

// UsageLog rows are append-only. The auto-increment ID doubles as the
// insertion-order tie-break when timestamps collide.
type UsageLog struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	KeyID     *uuid.UUID `gorm:"type:uuid;index"`
	Action    string     `gorm:"type:varchar(32);not null;index"`
	Details   string     `gorm:"type:text"`
	Timestamp time.Time  `gorm:"not null;index"`
}

func (UsageLog) TableName() string {
	return "usage_logs"
}
