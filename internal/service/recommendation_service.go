package service

import (
	"context"
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

type IRecommendationService interface {
	Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateRecommendationsRequest) (*dto.RecommendationResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.RecommendationResponse, error)
}

type recommendationService struct {
	uowFactory  unitofwork.RepositoryFactory
	llmProvider llm.LLMProvider // nil means fallback content only
}

func NewRecommendationService(uowFactory unitofwork.RepositoryFactory, llmProvider llm.LLMProvider) IRecommendationService {
	return &recommendationService{
		uowFactory:  uowFactory,
		llmProvider: llmProvider,
	}
}

// recentMoodRow et al keep the prompt JSON stable regardless of how the
// entities evolve.
type recentMoodRow struct {
	Date  string `json:"date"`
	Emoji string `json:"emoji"`
	Note  string `json:"note,omitempty"`
}

type recentEntryRow struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Mood    string `json:"mood,omitempty"`
}

type recentConcernRow struct {
	Content string `json:"content"`
}

func toRecommendationResponse(rec *entity.AIRecommendation) *dto.RecommendationResponse {
	recContext := ""
	if rec.Context != nil {
		recContext = *rec.Context
	}
	return &dto.RecommendationResponse{
		Id:              rec.Id,
		Source:          rec.Source,
		Context:         recContext,
		Recommendations: rec.Recommendations,
		Fallback:        rec.Fallback,
		CreatedAt:       rec.CreatedAt,
	}
}

func (s *recommendationService) Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateRecommendationsRequest) (*dto.RecommendationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	recentMoods, err := uow.MoodLogRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: 5},
	)
	if err != nil {
		return nil, err
	}

	recentEntries, err := uow.DiaryEntryRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: 3},
	)
	if err != nil {
		return nil, err
	}

	recentConcerns, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.BySender{Sender: string(entity.ChatSenderUser)},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: 5},
	)
	if err != nil {
		return nil, err
	}

	moodRows := make([]recentMoodRow, 0, len(recentMoods))
	for _, log := range recentMoods {
		row := recentMoodRow{Date: log.Date.Format("2006-01-02"), Emoji: log.Emoji}
		if log.Note != nil {
			row.Note = *log.Note
		}
		moodRows = append(moodRows, row)
	}

	entryRows := make([]recentEntryRow, 0, len(recentEntries))
	for _, entry := range recentEntries {
		row := recentEntryRow{Title: entry.Title, Content: entry.Content}
		if entry.Mood != nil {
			row.Mood = *entry.Mood
		}
		entryRows = append(entryRows, row)
	}

	concernRows := make([]recentConcernRow, 0, len(recentConcerns))
	for _, msg := range recentConcerns {
		concernRows = append(concernRows, recentConcernRow{Content: msg.Content})
	}

	prompt := insight.RecommendationPrompt(req.Source, req.Context, moodRows, entryRows, concernRows)
	recommendations, fallback := s.generate(ctx, prompt)

	recContext := req.Context
	if recContext == "" {
		recContext = "AI-generated wellness recommendations"
	}

	rec := &entity.AIRecommendation{
		Id:              uuid.New(),
		UserId:          userId,
		Source:          req.Source,
		Context:         &recContext,
		Recommendations: recommendations,
		Fallback:        fallback,
		CreatedAt:       time.Now(),
	}
	if err := uow.AIRecommendationRepository().Create(ctx, rec); err != nil {
		return nil, err
	}

	return toRecommendationResponse(rec), nil
}

func (s *recommendationService) generate(ctx context.Context, prompt string) ([]string, bool) {
	if s.llmProvider == nil {
		return append([]string(nil), insight.FallbackRecommendations...), true
	}

	raw, err := s.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(0.4),
		llm.WithTopK(40),
		llm.WithTopP(0.95),
		llm.WithMaxTokens(1024),
	)
	if err != nil {
		fmt.Printf("[WARN] Recommendation generation failed, using fallback: %v\n", err)
		return append([]string(nil), insight.FallbackRecommendations...), true
	}

	return insight.ParseRecommendations(raw)
}

func (s *recommendationService) List(ctx context.Context, userId uuid.UUID) ([]*dto.RecommendationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	recs, err := uow.AIRecommendationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.RecommendationResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toRecommendationResponse(rec))
	}
	return out, nil
}
