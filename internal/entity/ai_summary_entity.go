package entity

import (
	"time"

	"github.com/google/uuid"
)

type AISummary struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Period    string
	Summary   string
	Fallback  bool // true when the text is substituted fallback content
	CreatedAt time.Time
}
