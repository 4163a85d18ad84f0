package model

import (
	"time"

	"github.com/google/uuid"
)

// AISummary rows accumulate; every regeneration inserts a new row.
type AISummary struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Period    string    `gorm:"type:varchar(20);not null"`
	Summary   string    `gorm:"type:text;not null"`
	Fallback  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (AISummary) TableName() string {
	return "ai_summaries"
}
