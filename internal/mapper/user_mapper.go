package mapper

import (
	"mindwell-be/internal/entity"
	"mindwell-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	return &entity.User{
		Id:            u.Id,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		Name:          u.Name,
		Bio:           u.Bio,
		Location:      u.Location,
		Role:          entity.UserRole(u.Role),
		Status:        entity.UserStatus(u.Status),
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	return &model.User{
		Id:            u.Id,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		Name:          u.Name,
		Bio:           u.Bio,
		Location:      u.Location,
		Role:          string(u.Role),
		Status:        string(u.Status),
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (m *UserMapper) TokenToEntity(t *model.EmailVerificationToken) *entity.EmailVerificationToken {
	if t == nil {
		return nil
	}
	return &entity.EmailVerificationToken{
		Id:        t.Id,
		UserId:    t.UserId,
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
	}
}

func (m *UserMapper) TokenToModel(t *entity.EmailVerificationToken) *model.EmailVerificationToken {
	if t == nil {
		return nil
	}
	return &model.EmailVerificationToken{
		Id:        t.Id,
		UserId:    t.UserId,
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
	}
}

func (m *UserMapper) RefreshTokenToEntity(t *model.UserRefreshToken) *entity.UserRefreshToken {
	if t == nil {
		return nil
	}
	return &entity.UserRefreshToken{
		Id:        t.Id,
		UserId:    t.UserId,
		TokenHash: t.TokenHash,
		ExpiresAt: t.ExpiresAt,
		Revoked:   t.Revoked,
		CreatedAt: t.CreatedAt,
		IpAddress: t.IpAddress,
		UserAgent: t.UserAgent,
	}
}

func (m *UserMapper) RefreshTokenToModel(t *entity.UserRefreshToken) *model.UserRefreshToken {
	if t == nil {
		return nil
	}
	return &model.UserRefreshToken{
		Id:        t.Id,
		UserId:    t.UserId,
		TokenHash: t.TokenHash,
		ExpiresAt: t.ExpiresAt,
		Revoked:   t.Revoked,
		CreatedAt: t.CreatedAt,
		IpAddress: t.IpAddress,
		UserAgent: t.UserAgent,
	}
}
