package serverutils

import (
	"tenant-notes-be/internal/pkg/apperror"
	"tenant-notes-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates errors bubbled out of controllers into
// the envelope. Internal causes are logged locally and never rendered.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		appErr := apperror.From(err)
		status := appErr.Kind.HTTPStatus()

		if appErr.Kind == apperror.KindInternal {
			log.Error("http", "request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err.Error(),
			})
		}

		body := ErrorBody{
			Success: false,
			Code:    status,
			Error:   appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
		if len(appErr.Fields) > 0 {
			body.Fields = appErr.Fields
		}
		return ctx.Status(status).JSON(body)
	}
}
