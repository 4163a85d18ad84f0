package entity

import (
	"time"

	"github.com/google/uuid"
)

type AIRecommendation struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	Source          string
	Context         *string
	Recommendations []string
	Fallback        bool
	CreatedAt       time.Time
}
