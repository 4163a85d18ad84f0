package service

import (
	"context"
	"log"
	"time"

	"mindwell-be/internal/dto"
	"mindwell-be/internal/repository/unitofwork"
	"mindwell-be/pkg/insight"

	"github.com/go-co-op/gocron/v2"
)

type ISchedulerService interface {
	Start(ctx context.Context) error
	Stop() error
}

// schedulerService runs the weekly summary job: every Monday morning it
// generates a "week" period summary for each user who logged a mood in
// the trailing seven days.
type schedulerService struct {
	uowFactory     unitofwork.RepositoryFactory
	summaryService ISummaryService
	scheduler      gocron.Scheduler
}

func NewSchedulerService(uowFactory unitofwork.RepositoryFactory, summaryService ISummaryService) (ISchedulerService, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &schedulerService{
		uowFactory:     uowFactory,
		summaryService: summaryService,
		scheduler:      s,
	}, nil
}

func (s *schedulerService) Start(ctx context.Context) error {
	_, err := s.scheduler.NewJob(
		gocron.WeeklyJob(1,
			gocron.NewWeekdays(time.Monday),
			gocron.NewAtTimes(gocron.NewAtTime(8, 0, 0)),
		),
		gocron.NewTask(func() {
			s.runWeeklySummaries(ctx)
		}),
	)
	if err != nil {
		return err
	}

	s.scheduler.Start()
	return nil
}

func (s *schedulerService) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *schedulerService) runWeeklySummaries(ctx context.Context) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	since := time.Now().AddDate(0, 0, -7)

	userIds, err := uow.MoodLogRepository().FindActiveUserIds(ctx, since)
	if err != nil {
		log.Printf("[ERROR] Weekly summary job: failed to list active users: %v", err)
		return
	}

	log.Printf("[INFO] Weekly summary job: generating summaries for %d users", len(userIds))

	for _, userId := range userIds {
		_, err := s.summaryService.Generate(ctx, userId, &dto.GenerateSummaryRequest{
			Period: insight.PeriodWeek,
		})
		if err != nil {
			log.Printf("[ERROR] Weekly summary job: user %s: %v", userId, err)
		}
	}
}
