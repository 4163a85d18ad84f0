package entity

import (
	"time"

	"github.com/google/uuid"
)

type DiaryEntry struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Title     string
	Content   string
	Mood      *string
	WordCount int
	CreatedAt time.Time
	DeletedAt *time.Time
}
