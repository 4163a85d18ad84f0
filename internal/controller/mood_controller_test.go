package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"mindwell-be/internal/dto"
	"mindwell-be/internal/pkg/serverutils"
	"mindwell-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type stubMoodService struct {
	getByDateRes *dto.MoodLogResponse
	getByDateErr error
}

func (s *stubMoodService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateMoodLogRequest) (*dto.MoodLogResponse, error) {
	return nil, nil
}

func (s *stubMoodService) List(ctx context.Context, userId uuid.UUID) ([]*dto.MoodLogResponse, error) {
	return nil, nil
}

func (s *stubMoodService) GetByDate(ctx context.Context, userId uuid.UUID, date string) (*dto.MoodLogResponse, error) {
	return s.getByDateRes, s.getByDateErr
}

func (s *stubMoodService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	return nil
}

func (s *stubMoodService) Stats(ctx context.Context, userId uuid.UUID) (*dto.MoodStatsResponse, error) {
	return nil, nil
}

func newMoodTestApp(svc service.IMoodService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(nopLogger{}))
	api := app.Group("/api")
	NewMoodController(svc).RegisterRoutes(api)
	return app
}

func bearerToken(t *testing.T) string {
	t.Helper()
	t.Setenv("JWT_SECRET", "test_secret")
	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    "user",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test_secret"))
	assert.NoError(t, err)
	return token
}

func getMoodByDate(t *testing.T, app *fiber.App, token string) (int, serverutils.ErrorBody) {
	t.Helper()
	req := httptest.NewRequest("GET", "/api/mood/v1/date/2026-08-28", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	assert.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	var envelope serverutils.ErrorBody
	_ = json.Unmarshal(body, &envelope)
	return resp.StatusCode, envelope
}

func TestMoodControllerGetByDateStatusMapping(t *testing.T) {
	token := bearerToken(t)

	t.Run("invalid date maps to 400", func(t *testing.T) {
		app := newMoodTestApp(&stubMoodService{getByDateErr: service.ErrInvalidMoodDate})

		status, envelope := getMoodByDate(t, app, token)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, service.ErrInvalidMoodDate.Error(), envelope.Message)
	})

	t.Run("persistence failure maps to 500", func(t *testing.T) {
		app := newMoodTestApp(&stubMoodService{getByDateErr: errors.New("connection refused")})

		status, envelope := getMoodByDate(t, app, token)
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, "internal server error", envelope.Message)
	})

	t.Run("missing log maps to 404", func(t *testing.T) {
		app := newMoodTestApp(&stubMoodService{})

		status, _ := getMoodByDate(t, app, token)
		assert.Equal(t, fiber.StatusNotFound, status)
	})
}
