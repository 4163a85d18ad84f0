package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatMessageRequest struct {
	Content string `json:"content" validate:"required,max=4000"`
}

type ChatMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type SendChatMessageResponse struct {
	UserMessage ChatMessageResponse `json:"user_message"`
	AiMessage   ChatMessageResponse `json:"ai_message"`
}
