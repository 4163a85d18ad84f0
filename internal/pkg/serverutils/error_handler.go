package serverutils

import (
	"errors"

	"mindwell-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts uncaught errors into the standard error envelope.
// Fiber errors keep their status code; everything else is logged and becomes a 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"error":  err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
	}
}
