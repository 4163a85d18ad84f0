package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is an append-only log; there is no update or delete path.
type ChatMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	Sender    string    `gorm:"type:varchar(10);not null"` // "user" or "ai"
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
