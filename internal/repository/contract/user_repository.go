package contract

import (
	"context"

	"mindwell-be/internal/entity"
	"mindwell-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	ActivateUser(ctx context.Context, id uuid.UUID) error

	CreateEmailVerificationToken(ctx context.Context, token *entity.EmailVerificationToken) error
	FindEmailVerificationToken(ctx context.Context, specs ...specification.Specification) (*entity.EmailVerificationToken, error)
	DeleteEmailVerificationToken(ctx context.Context, id uuid.UUID) error

	CreateRefreshToken(ctx context.Context, token *entity.UserRefreshToken) error
	FindRefreshToken(ctx context.Context, specs ...specification.Specification) (*entity.UserRefreshToken, error)
	RevokeRefreshToken(ctx context.Context, id uuid.UUID) error
}
