package model

import (
	"time"

	"github.com/google/uuid"
)

// MoodLog stores one emoji check-in per user per calendar day.
// The composite unique index enforces the one-entry-per-day rule at the data layer.
type MoodLog struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_mood_logs_user_date"`
	Emoji     string    `gorm:"type:varchar(16);not null"`
	Note      *string   `gorm:"type:text"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_mood_logs_user_date"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (MoodLog) TableName() string {
	return "mood_logs"
}
