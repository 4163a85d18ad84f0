package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDiaryEntryRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
	Mood    string `json:"mood"`
}

type CreateDiaryEntryResponse struct {
	Id        uuid.UUID `json:"id"`
	WordCount int       `json:"word_count"`
}

type DiaryEntryResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood,omitempty"`
	WordCount int       `json:"word_count"`
	CreatedAt time.Time `json:"created_at"`
}
