package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mindwell-be/internal/constant"
	"mindwell-be/internal/dto"
	"mindwell-be/internal/entity"
	"mindwell-be/internal/repository/implementation"
	"mindwell-be/internal/repository/specification"
	"mindwell-be/internal/repository/unitofwork"
	"mindwell-be/pkg/events"
	pktNats "mindwell-be/pkg/nats"
	"mindwell-be/pkg/wellness"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrMoodAlreadyLogged = errors.New("mood already logged for this date")
var ErrMoodLogNotFound = errors.New("mood log not found")
var ErrInvalidMoodDate = errors.New("invalid date format, expected YYYY-MM-DD")

// moodStatsTTL bounds staleness of the cached dashboard stats; writes
// invalidate eagerly so this only matters for cross-instance drift.
const moodStatsTTL = 5 * time.Minute

type IMoodService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateMoodLogRequest) (*dto.MoodLogResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.MoodLogResponse, error)
	GetByDate(ctx context.Context, userId uuid.UUID, date string) (*dto.MoodLogResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Stats(ctx context.Context, userId uuid.UUID) (*dto.MoodStatsResponse, error)
}

type moodService struct {
	uowFactory     unitofwork.RepositoryFactory
	redisClient    *redis.Client // nil when no cache is configured
	eventPublisher *pktNats.Publisher
}

func NewMoodService(uowFactory unitofwork.RepositoryFactory, redisClient *redis.Client, eventPublisher *pktNats.Publisher) IMoodService {
	return &moodService{
		uowFactory:     uowFactory,
		redisClient:    redisClient,
		eventPublisher: eventPublisher,
	}
}

func statsCacheKey(userId uuid.UUID) string {
	return "mood:stats:" + userId.String()
}

// moodLogDate resolves the calendar day for a new log. An empty input
// means "today" on the same UTC clock the streak walk in Stats uses;
// otherwise the two can disagree around midnight in non-UTC zones.
func moodLogDate(raw string, now time.Time) (time.Time, error) {
	if raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, ErrInvalidMoodDate
		}
		return parsed, nil
	}
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

func (s *moodService) invalidateStats(ctx context.Context, userId uuid.UUID) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, statsCacheKey(userId)).Err(); err != nil {
		fmt.Printf("[WARN] Failed to invalidate mood stats cache: %v\n", err)
	}
}

func toMoodLogResponse(log *entity.MoodLog) *dto.MoodLogResponse {
	note := ""
	if log.Note != nil {
		note = *log.Note
	}
	return &dto.MoodLogResponse{
		Id:        log.Id,
		Date:      log.Date.Format("2006-01-02"),
		Emoji:     log.Emoji,
		Note:      note,
		CreatedAt: log.CreatedAt,
	}
}

func (s *moodService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateMoodLogRequest) (*dto.MoodLogResponse, error) {
	date, err := moodLogDate(req.Date, time.Now())
	if err != nil {
		return nil, err
	}

	var note *string
	if req.Note != "" {
		note = &req.Note
	}

	log := &entity.MoodLog{
		Id:        uuid.New(),
		UserId:    userId,
		Emoji:     req.Emoji,
		Note:      note,
		Date:      date,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MoodLogRepository().Create(ctx, log); err != nil {
		if errors.Is(err, implementation.ErrDuplicateMoodLog) {
			return nil, ErrMoodAlreadyLogged
		}
		return nil, err
	}

	s.invalidateStats(ctx, userId)

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: constant.EventMoodLogged,
			Data: map[string]interface{}{
				"user_id": userId,
				"date":    log.Date.Format("2006-01-02"),
				"emoji":   log.Emoji,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", constant.EventMoodLogged, err)
		}
	}

	return toMoodLogResponse(log), nil
}

func (s *moodService) List(ctx context.Context, userId uuid.UUID) ([]*dto.MoodLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	logs, err := uow.MoodLogRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "date", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.MoodLogResponse, 0, len(logs))
	for _, log := range logs {
		out = append(out, toMoodLogResponse(log))
	}
	return out, nil
}

func (s *moodService) GetByDate(ctx context.Context, userId uuid.UUID, date string) (*dto.MoodLogResponse, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidMoodDate
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	log, err := uow.MoodLogRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OnDate{Date: parsed},
	)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, nil
	}
	return toMoodLogResponse(log), nil
}

func (s *moodService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	log, err := uow.MoodLogRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if log == nil {
		return ErrMoodLogNotFound
	}

	if err := uow.MoodLogRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateStats(ctx, userId)
	return nil
}

func (s *moodService) Stats(ctx context.Context, userId uuid.UUID) (*dto.MoodStatsResponse, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, statsCacheKey(userId)).Result()
		if err == nil {
			var stats dto.MoodStatsResponse
			if jsonErr := json.Unmarshal([]byte(cached), &stats); jsonErr == nil {
				return &stats, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			fmt.Printf("[WARN] Mood stats cache read failed: %v\n", err)
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	logs, err := uow.MoodLogRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "date", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(logs))
	emojis := make([]string, 0, len(logs))
	scores := make([]float64, 0, len(logs))
	for _, log := range logs {
		dates = append(dates, log.Date)
		emojis = append(emojis, log.Emoji)
		scores = append(scores, wellness.Score(log.Emoji))
	}

	distribution := make([]dto.MoodDistributionItem, 0)
	for _, bucket := range wellness.Distribution(emojis) {
		distribution = append(distribution, dto.MoodDistributionItem{
			Emoji:      bucket.Emoji,
			Count:      bucket.Count,
			Percentage: bucket.Percentage,
		})
	}

	stats := &dto.MoodStatsResponse{
		Streak:                wellness.Streak(dates, time.Now().UTC()),
		AverageScore:          wellness.AverageScore(emojis),
		ImprovementPercentage: wellness.ImprovementPercent(scores),
		TotalLogs:             len(logs),
		Distribution:          distribution,
	}

	if s.redisClient != nil {
		if payload, jsonErr := json.Marshal(stats); jsonErr == nil {
			if err := s.redisClient.Set(ctx, statsCacheKey(userId), payload, moodStatsTTL).Err(); err != nil {
				fmt.Printf("[WARN] Mood stats cache write failed: %v\n", err)
			}
		}
	}

	return stats, nil
}
