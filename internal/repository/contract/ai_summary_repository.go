package contract

import (
	"context"

	"mindwell-be/internal/entity"
	"mindwell-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AISummaryRepository interface {
	Create(ctx context.Context, summary *entity.AISummary) error
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AISummary, error)
}
