package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mindwell-be/internal/constant"
	"mindwell-be/internal/dto"
	"mindwell-be/internal/repository/memory"
	"mindwell-be/internal/repository/specification"
	"mindwell-be/internal/repository/unitofwork"
	"mindwell-be/pkg/events"
	pktNats "mindwell-be/pkg/nats"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
	DeleteAccount(ctx context.Context, userId uuid.UUID) error
}

type userService struct {
	uowFactory     unitofwork.RepositoryFactory
	contextRepo    *memory.ChatContextRepository
	eventPublisher *pktNats.Publisher
}

func NewUserService(
	uowFactory unitofwork.RepositoryFactory,
	contextRepo *memory.ChatContextRepository,
	eventPublisher *pktNats.Publisher,
) IUserService {
	return &userService{
		uowFactory:     uowFactory,
		contextRepo:    contextRepo,
		eventPublisher: eventPublisher,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	bio := ""
	if user.Bio != nil {
		bio = *user.Bio
	}
	location := ""
	if user.Location != nil {
		location = *user.Location
	}

	return &dto.UserProfileResponse{
		Id:        user.Id,
		Email:     user.Email,
		Name:      user.Name,
		Bio:       bio,
		Location:  location,
		Role:      string(user.Role),
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Name = req.Name
	if req.Bio != "" {
		user.Bio = &req.Bio
	} else {
		user.Bio = nil
	}
	if req.Location != "" {
		user.Location = &req.Location
	} else {
		user.Location = nil
	}
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userId)
}

func (s *userService) DeleteAccount(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	// All user-owned rows go with the account, in one transaction.
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.MoodLogRepository().DeleteAllByUserId(ctx, userId); err != nil {
		return err
	}
	if err := uow.DiaryEntryRepository().DeleteAllByUserIdUnscoped(ctx, userId); err != nil {
		return err
	}
	if err := uow.ChatMessageRepository().DeleteAllByUserId(ctx, userId); err != nil {
		return err
	}
	if err := uow.AISummaryRepository().DeleteAllByUserId(ctx, userId); err != nil {
		return err
	}
	if err := uow.AIRecommendationRepository().DeleteAllByUserId(ctx, userId); err != nil {
		return err
	}
	if err := uow.UserRepository().Delete(ctx, userId); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.contextRepo.Delete(userId)

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: constant.EventUserDeleted,
			Data: map[string]interface{}{
				"user_id": userId,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", constant.EventUserDeleted, err)
		}
	}

	return nil
}
