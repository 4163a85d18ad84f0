package unitofwork

import (
	"context"

	"mindwell-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	MoodLogRepository() contract.MoodLogRepository
	DiaryEntryRepository() contract.DiaryEntryRepository
	ChatMessageRepository() contract.ChatMessageRepository
	AISummaryRepository() contract.AISummaryRepository
	AIRecommendationRepository() contract.AIRecommendationRepository
}
