package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AIRecommendation struct {
	Id              uuid.UUID                      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID                      `gorm:"type:uuid;not null;index"`
	Source          string                         `gorm:"type:varchar(50);not null"`
	Context         *string                        `gorm:"type:text"`
	Recommendations datatypes.JSONSlice[string]    `gorm:"not null"`
	Fallback        bool                           `gorm:"not null;default:false"`
	CreatedAt       time.Time                      `gorm:"autoCreateTime"`
}

func (AIRecommendation) TableName() string {
	return "ai_recommendations"
}
