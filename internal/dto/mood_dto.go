package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMoodLogRequest struct {
	Emoji string `json:"emoji" validate:"required"`
	// Date in YYYY-MM-DD; empty means today.
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Note string `json:"note" validate:"max=1000"`
}

type MoodLogResponse struct {
	Id        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Emoji     string    `json:"emoji"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type MoodDistributionItem struct {
	Emoji      string `json:"emoji"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type MoodStatsResponse struct {
	Streak                int                    `json:"streak"`
	AverageScore          float64                `json:"average_score"`
	ImprovementPercentage int                    `json:"improvement_percentage"`
	TotalLogs             int                    `json:"total_logs"`
	Distribution          []MoodDistributionItem `json:"distribution"`
}
