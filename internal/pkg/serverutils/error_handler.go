package serverutils

import (
	"errors"

	"open-law-be/internal/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates typed domain errors into HTTP responses.
// Storage failures are masked with a generic message; everything else carries
// the service's own wording, which the frontend surfaces as a flash message.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		var domainErr *apperr.Error
		if errors.As(err, &domainErr) {
			status := apperr.HTTPStatus(domainErr.Kind)
			if status == fiber.StatusInternalServerError {
				return ctx.Status(status).JSON(ErrorResponse("Internal server error"))
			}
			return ctx.Status(status).JSON(ErrorResponse(domainErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Internal server error"))
	}
}
