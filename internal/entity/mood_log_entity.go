package entity

import (
	"time"

	"github.com/google/uuid"
)

type MoodLog struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Emoji     string
	Note      *string
	Date      time.Time // calendar day, time part zeroed
	CreatedAt time.Time
}
