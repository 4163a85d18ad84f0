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
	"mindwell-be/internal/repository/specification"
	"mindwell-be/internal/repository/unitofwork"
	"mindwell-be/pkg/events"
	pktNats "mindwell-be/pkg/nats"
	"mindwell-be/pkg/wellness"

	"github.com/google/uuid"
)

var ErrDiaryEntryNotFound = errors.New("diary entry not found")

type IDiaryService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateDiaryEntryRequest) (*dto.CreateDiaryEntryResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.DiaryEntryResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type diaryService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewDiaryService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IDiaryService {
	return &diaryService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func toDiaryEntryResponse(entry *entity.DiaryEntry) *dto.DiaryEntryResponse {
	mood := ""
	if entry.Mood != nil {
		mood = *entry.Mood
	}
	return &dto.DiaryEntryResponse{
		Id:        entry.Id,
		Title:     entry.Title,
		Content:   entry.Content,
		Mood:      mood,
		WordCount: entry.WordCount,
		CreatedAt: entry.CreatedAt,
	}
}

func (s *diaryService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateDiaryEntryRequest) (*dto.CreateDiaryEntryResponse, error) {
	var mood *string
	if req.Mood != "" {
		mood = &req.Mood
	}

	entry := &entity.DiaryEntry{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     req.Title,
		Content:   req.Content,
		Mood:      mood,
		WordCount: wellness.WordCount(req.Content),
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.DiaryEntryRepository().Create(ctx, entry); err != nil {
		return nil, err
	}

	// Kick off recommendation generation in the background; the entry
	// itself is already persisted, so publish failures only cost the
	// side effect.
	if s.publisherService != nil {
		msgPayload := dto.GenerateRecommendationsMessage{
			UserId:  userId,
			Source:  "diary_entry",
			Context: fmt.Sprintf("New diary entry: %s", entry.Title),
		}
		msgJson, err := json.Marshal(msgPayload)
		if err == nil {
			if err := s.publisherService.Publish(ctx, msgJson); err != nil {
				fmt.Printf("[WARN] Failed to publish recommendations message: %v\n", err)
			}
		}
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: constant.EventDiaryCreated,
			Data: map[string]interface{}{
				"entry_id":   entry.Id,
				"user_id":    userId,
				"word_count": entry.WordCount,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", constant.EventDiaryCreated, err)
		}
	}

	return &dto.CreateDiaryEntryResponse{
		Id:        entry.Id,
		WordCount: entry.WordCount,
	}, nil
}

func (s *diaryService) List(ctx context.Context, userId uuid.UUID) ([]*dto.DiaryEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	entries, err := uow.DiaryEntryRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.DiaryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toDiaryEntryResponse(entry))
	}
	return out, nil
}

func (s *diaryService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	entry, err := uow.DiaryEntryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if entry == nil {
		return ErrDiaryEntryNotFound
	}

	return uow.DiaryEntryRepository().Delete(ctx, id)
}
