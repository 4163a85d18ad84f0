package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DiaryEntry struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title     string         `gorm:"type:varchar(255);not null"`
	Content   string         `gorm:"type:text;not null"`
	Mood      *string        `gorm:"type:varchar(100)"`
	WordCount int            `gorm:"not null;default:0"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (DiaryEntry) TableName() string {
	return "diary_entries"
}
