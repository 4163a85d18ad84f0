package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"mindwell-be/internal/entity"
	"mindwell-be/internal/repository/specification"
	"mindwell-be/internal/repository/unitofwork"
	"mindwell-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func connect(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()

	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	return unitofwork.NewRepositoryFactory(gormDB)
}

func createTestUser(t *testing.T, uow unitofwork.UnitOfWork) *entity.User {
	t.Helper()

	user := &entity.User{
		Id:        uuid.New(),
		Email:     "test-integration-" + uuid.New().String() + "@example.com",
		Name:      "Integration Test User",
		Role:      entity.UserRoleUser,
		Status:    entity.UserStatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	err := uow.UserRepository().Create(context.Background(), user)
	assert.NoError(t, err)
	return user
}

func TestGormConnection(t *testing.T) {
	uowFactory := connect(t)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.MoodLogRepository())
	assert.NotNil(t, uow.DiaryEntryRepository())
	assert.NotNil(t, uow.ChatMessageRepository())
	assert.NotNil(t, uow.AISummaryRepository())
	assert.NotNil(t, uow.AIRecommendationRepository())

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})
}

func TestUserRoleStatusRoundTrip(t *testing.T) {
	uowFactory := connect(t)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	user := createTestUser(t, uow)
	defer func() {
		_ = uow.UserRepository().Delete(ctx, user.Id)
	}()

	found, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: user.Id})
	assert.NoError(t, err)
	if assert.NotNil(t, found) {
		assert.Equal(t, entity.UserRoleUser, found.Role)
		assert.Equal(t, entity.UserStatusActive, found.Status)
	}
}

func TestMoodLogLifecycle(t *testing.T) {
	uowFactory := connect(t)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	user := createTestUser(t, uow)
	defer func() {
		_ = uow.MoodLogRepository().DeleteAllByUserId(ctx, user.Id)
		_ = uow.UserRepository().Delete(ctx, user.Id)
	}()

	today := time.Now().UTC().Truncate(24 * time.Hour)

	log := &entity.MoodLog{
		Id:        uuid.New(),
		UserId:    user.Id,
		Emoji:     "😊",
		Date:      today,
		CreatedAt: time.Now(),
	}
	assert.NoError(t, uow.MoodLogRepository().Create(ctx, log))

	t.Run("duplicate day is rejected", func(t *testing.T) {
		dup := &entity.MoodLog{
			Id:        uuid.New(),
			UserId:    user.Id,
			Emoji:     "😔",
			Date:      today,
			CreatedAt: time.Now(),
		}
		err := uow.MoodLogRepository().Create(ctx, dup)
		assert.Error(t, err)
	})

	t.Run("found by date probe", func(t *testing.T) {
		found, err := uow.MoodLogRepository().FindOne(ctx,
			specification.UserOwnedBy{UserID: user.Id},
			specification.OnDate{Date: today},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, "😊", found.Emoji)
		}
	})

	t.Run("delete then list returns zero", func(t *testing.T) {
		assert.NoError(t, uow.MoodLogRepository().Delete(ctx, log.Id))

		logs, err := uow.MoodLogRepository().FindAll(ctx,
			specification.UserOwnedBy{UserID: user.Id},
		)
		assert.NoError(t, err)
		assert.Len(t, logs, 0)
	})
}

func TestDiaryEntrySoftDelete(t *testing.T) {
	uowFactory := connect(t)
	ctx := context.Background()
	uow := uowFactory.NewUnitOfWork(ctx)

	user := createTestUser(t, uow)
	defer func() {
		_ = uow.DiaryEntryRepository().DeleteAllByUserIdUnscoped(ctx, user.Id)
		_ = uow.UserRepository().Delete(ctx, user.Id)
	}()

	entry := &entity.DiaryEntry{
		Id:        uuid.New(),
		UserId:    user.Id,
		Title:     "Integration entry",
		Content:   "Hello   world",
		WordCount: 2,
		CreatedAt: time.Now(),
	}
	assert.NoError(t, uow.DiaryEntryRepository().Create(ctx, entry))

	assert.NoError(t, uow.DiaryEntryRepository().Delete(ctx, entry.Id))

	entries, err := uow.DiaryEntryRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: user.Id},
	)
	assert.NoError(t, err)
	assert.Len(t, entries, 0, "soft-deleted entries must not appear in listings")
}
