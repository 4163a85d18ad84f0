package contract

import (
	"context"

	"mindwell-be/internal/entity"
	"mindwell-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DiaryEntryRepository interface {
	Create(ctx context.Context, entry *entity.DiaryEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByUserIdUnscoped(ctx context.Context, userId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DiaryEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DiaryEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
