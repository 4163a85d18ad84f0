package service

import (
	"context"
	"time"

	"mindwell-be/internal/repository/specification"
	"mindwell-be/internal/repository/unitofwork"
	"mindwell-be/pkg/export"

	"github.com/google/uuid"
)

type IExportService interface {
	// Export renders the user's data as a downloadable text document and
	// returns the document body plus the suggested filename.
	Export(ctx context.Context, userId uuid.UUID) (string, string, error)
}

type exportService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewExportService(uowFactory unitofwork.RepositoryFactory) IExportService {
	return &exportService{
		uowFactory: uowFactory,
	}
}

func (s *exportService) Export(ctx context.Context, userId uuid.UUID) (string, string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "", ErrUserNotFound
	}

	moodLogs, err := uow.MoodLogRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "date", Desc: true},
	)
	if err != nil {
		return "", "", err
	}

	diaryEntries, err := uow.DiaryEntryRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return "", "", err
	}

	summaries, err := uow.AISummaryRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return "", "", err
	}

	doc := export.Document{
		Profile: export.Profile{
			Name:     user.Name,
			Email:    user.Email,
			JoinedAt: user.CreatedAt,
		},
		GeneratedAt: time.Now(),
	}
	if user.Bio != nil {
		doc.Profile.Bio = *user.Bio
	}
	if user.Location != nil {
		doc.Profile.Location = *user.Location
	}

	for _, log := range moodLogs {
		row := export.MoodLog{Date: log.Date, Emoji: log.Emoji}
		if log.Note != nil {
			row.Note = *log.Note
		}
		doc.MoodLogs = append(doc.MoodLogs, row)
	}

	for _, entry := range diaryEntries {
		row := export.DiaryEntry{
			CreatedAt: entry.CreatedAt,
			Title:     entry.Title,
			Content:   entry.Content,
			WordCount: entry.WordCount,
		}
		if entry.Mood != nil {
			row.Mood = *entry.Mood
		}
		doc.Diary = append(doc.Diary, row)
	}

	for _, summary := range summaries {
		doc.Summaries = append(doc.Summaries, export.Summary{
			CreatedAt: summary.CreatedAt,
			Period:    summary.Period,
			Text:      summary.Summary,
		})
	}

	return doc.Render(), export.Filename(doc.GeneratedAt), nil
}
