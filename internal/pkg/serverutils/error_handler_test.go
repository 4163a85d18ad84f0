package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type captureLogger struct {
	errorCalls []string
}

func (l *captureLogger) Debug(module, message string, details map[string]interface{}) {}
func (l *captureLogger) Info(module, message string, details map[string]interface{})  {}
func (l *captureLogger) Warn(module, message string, details map[string]interface{})  {}
func (l *captureLogger) Error(module, message string, details map[string]interface{}) {
	l.errorCalls = append(l.errorCalls, message)
}
func (l *captureLogger) Sync() error { return nil }

func newTestApp(log *captureLogger) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(log))

	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return errors.New("database is on fire")
	})
	app.Get("/teapot", func(ctx *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})
	return app
}

func TestErrorHandlerMiddleware(t *testing.T) {
	t.Run("unhandled error becomes logged 500 envelope", func(t *testing.T) {
		log := &captureLogger{}
		app := newTestApp(log)

		resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		var envelope ErrorBody
		assert.NoError(t, json.Unmarshal(body, &envelope))
		assert.False(t, envelope.Success)
		assert.Equal(t, fiber.StatusInternalServerError, envelope.Code)
		assert.Equal(t, "internal server error", envelope.Message)

		assert.Len(t, log.errorCalls, 1)
	})

	t.Run("fiber error keeps its status and is not logged", func(t *testing.T) {
		log := &captureLogger{}
		app := newTestApp(log)

		resp, err := app.Test(httptest.NewRequest("GET", "/teapot", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		var envelope ErrorBody
		assert.NoError(t, json.Unmarshal(body, &envelope))
		assert.Equal(t, "short and stout", envelope.Message)

		assert.Empty(t, log.errorCalls)
	})
}
