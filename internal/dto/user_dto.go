package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio,omitempty"`
	Location  string    `json:"location,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateProfileRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Bio      string `json:"bio" validate:"max=500"`
	Location string `json:"location" validate:"max=100"`
}
