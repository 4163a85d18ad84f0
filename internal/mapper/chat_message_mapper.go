package mapper

import (
	"mindwell-be/internal/entity"
	"mindwell-be/internal/model"
)

type ChatMessageMapper struct{}

func NewChatMessageMapper() *ChatMessageMapper {
	return &ChatMessageMapper{}
}

func (m *ChatMessageMapper) ToEntity(c *model.ChatMessage) *entity.ChatMessage {
	if c == nil {
		return nil
	}

	return &entity.ChatMessage{
		Id:        c.Id,
		UserId:    c.UserId,
		Content:   c.Content,
		Sender:    entity.ChatSender(c.Sender),
		CreatedAt: c.CreatedAt,
	}
}

func (m *ChatMessageMapper) ToModel(c *entity.ChatMessage) *model.ChatMessage {
	if c == nil {
		return nil
	}

	return &model.ChatMessage{
		Id:        c.Id,
		UserId:    c.UserId,
		Content:   c.Content,
		Sender:    string(c.Sender),
		CreatedAt: c.CreatedAt,
	}
}

func (m *ChatMessageMapper) ToEntities(msgs []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(msgs))
	for i, c := range msgs {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
