package contract

import (
	"context"

	"mindwell-be/internal/entity"
	"mindwell-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ChatMessageRepository is append-only: no update or delete of single messages.
type ChatMessageRepository interface {
	Create(ctx context.Context, msg *entity.ChatMessage) error
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
