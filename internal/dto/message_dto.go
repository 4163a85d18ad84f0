package dto

import "github.com/google/uuid"

// GenerateRecommendationsMessage is the payload published to the
// recommendations topic when a diary entry is created.
type GenerateRecommendationsMessage struct {
	UserId  uuid.UUID `json:"user_id"`
	Source  string    `json:"source"`
	Context string    `json:"context"`
}
