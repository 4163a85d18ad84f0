package dto

import (
	"time"

	"github.com/google/uuid"
)

type GenerateSummaryRequest struct {
	// Period is one of 7d, 30d, 90d, 1y, week; empty means 7d.
	Period string `json:"period"`
}

type SummaryResponse struct {
	Id              uuid.UUID `json:"id"`
	Period          string    `json:"period"`
	Summary         string    `json:"summary"`
	Recommendations []string  `json:"recommendations,omitempty"`
	Fallback        bool      `json:"fallback"`
	MoodLogsCount   int       `json:"mood_logs_count"`
	DiaryEntryCount int       `json:"diary_entries_count"`
	CreatedAt       time.Time `json:"created_at"`
}

type SummaryHistoryItem struct {
	Id        uuid.UUID `json:"id"`
	Period    string    `json:"period"`
	Summary   string    `json:"summary"`
	Fallback  bool      `json:"fallback"`
	CreatedAt time.Time `json:"created_at"`
}

type GenerateRecommendationsRequest struct {
	Source  string `json:"source" validate:"required,max=50"`
	Context string `json:"context" validate:"max=500"`
}

type RecommendationResponse struct {
	Id              uuid.UUID `json:"id"`
	Source          string    `json:"source"`
	Context         string    `json:"context,omitempty"`
	Recommendations []string  `json:"recommendations"`
	Fallback        bool      `json:"fallback"`
	CreatedAt       time.Time `json:"created_at"`
}
