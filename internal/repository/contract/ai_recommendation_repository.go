package contract

import (
	"context"

	"mindwell-be/internal/entity"
	"mindwell-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AIRecommendationRepository interface {
	Create(ctx context.Context, rec *entity.AIRecommendation) error
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AIRecommendation, error)
}
