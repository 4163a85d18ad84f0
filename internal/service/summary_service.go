package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mindwell-be/internal/dto"
	"mindwell-be/internal/entity"
	"mindwell-be/internal/repository/specification"
	"mindwell-be/internal/repository/unitofwork"
	"mindwell-be/pkg/insight"
	"mindwell-be/pkg/llm"

	"github.com/google/uuid"
)

var ErrInvalidPeriod = errors.New("invalid period, expected one of 7d, 30d, 90d, 1y, week")

type ISummaryService interface {
	Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateSummaryRequest) (*dto.SummaryResponse, error)
	History(ctx context.Context, userId uuid.UUID) ([]*dto.SummaryHistoryItem, error)
}

type summaryService struct {
	uowFactory  unitofwork.RepositoryFactory
	llmProvider llm.LLMProvider // nil means fallback content only
}

func NewSummaryService(uowFactory unitofwork.RepositoryFactory, llmProvider llm.LLMProvider) ISummaryService {
	return &summaryService{
		uowFactory:  uowFactory,
		llmProvider: llmProvider,
	}
}

func (s *summaryService) Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateSummaryRequest) (*dto.SummaryResponse, error) {
	period := req.Period
	if period == "" {
		period = insight.DefaultPeriod
	}
	if !insight.ValidPeriod(period) {
		return nil, ErrInvalidPeriod
	}

	start, err := insight.PeriodStart(period, time.Now())
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	moodLogs, err := uow.MoodLogRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.DateOnOrAfter{Start: start},
		specification.OrderBy{Field: "date", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	diaryEntries, err := uow.DiaryEntryRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.CreatedOnOrAfter{Start: start},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: 10},
	)
	if err != nil {
		return nil, err
	}

	moodLines := make([]insight.MoodLine, 0, len(moodLogs))
	for _, log := range moodLogs {
		moodLines = append(moodLines, insight.MoodLine{
			Date:  log.Date,
			Emoji: log.Emoji,
			Note:  log.Note,
		})
	}

	diaryLines := make([]insight.DiaryLine, 0, len(diaryEntries))
	for _, entry := range diaryEntries {
		diaryLines = append(diaryLines, insight.DiaryLine{
			Title:   entry.Title,
			Content: entry.Content,
		})
	}

	result := s.generate(ctx, insight.SummaryPrompt(period, moodLines, diaryLines))

	summary := &entity.AISummary{
		Id:        uuid.New(),
		UserId:    userId,
		Period:    period,
		Summary:   result.Summary,
		Fallback:  result.Fallback,
		CreatedAt: time.Now(),
	}
	if err := uow.AISummaryRepository().Create(ctx, summary); err != nil {
		return nil, err
	}

	return &dto.SummaryResponse{
		Id:              summary.Id,
		Period:          period,
		Summary:         result.Summary,
		Recommendations: result.Recommendations,
		Fallback:        result.Fallback,
		MoodLogsCount:   len(moodLogs),
		DiaryEntryCount: len(diaryEntries),
		CreatedAt:       summary.CreatedAt,
	}, nil
}

// generate runs the model and parses its reply. Any model failure
// degrades to fallback content; it is never surfaced as an error.
func (s *summaryService) generate(ctx context.Context, prompt string) insight.SummaryResult {
	if s.llmProvider == nil {
		return insight.SummaryResult{
			Summary:         insight.FallbackSummary,
			Recommendations: append([]string(nil), insight.FallbackSummaryRecommendations...),
			Fallback:        true,
		}
	}

	raw, err := s.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(0.7),
		llm.WithTopK(40),
		llm.WithTopP(0.95),
		llm.WithMaxTokens(1024),
	)
	if err != nil {
		fmt.Printf("[WARN] Summary generation failed, using fallback: %v\n", err)
		return insight.SummaryResult{
			Summary:         insight.FallbackSummary,
			Recommendations: append([]string(nil), insight.FallbackSummaryRecommendations...),
			Fallback:        true,
		}
	}

	return insight.ParseSummaryResponse(raw)
}

func (s *summaryService) History(ctx context.Context, userId uuid.UUID) ([]*dto.SummaryHistoryItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	summaries, err := uow.AISummaryRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.SummaryHistoryItem, 0, len(summaries))
	for _, summary := range summaries {
		out = append(out, &dto.SummaryHistoryItem{
			Id:        summary.Id,
			Period:    summary.Period,
			Summary:   summary.Summary,
			Fallback:  summary.Fallback,
			CreatedAt: summary.CreatedAt,
		})
	}
	return out, nil
}
