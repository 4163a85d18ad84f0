package contract

import (
	"context"
	"time"

	"mindwell-be/internal/entity"
	"mindwell-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MoodLogRepository interface {
	Create(ctx context.Context, log *entity.MoodLog) error
	// FindActiveUserIds lists distinct users with a mood log on or after
	// the given day. Used by the weekly summary job.
	FindActiveUserIds(ctx context.Context, since time.Time) ([]uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MoodLog, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MoodLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
