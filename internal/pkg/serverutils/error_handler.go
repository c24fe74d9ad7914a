// FILE: internal/pkg/serverutils/error_handler.go
package serverutils

import (
	"errors"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps classified service errors to HTTP statuses.
// Anything unclassified is treated as a storage failure and hidden behind
// a generic 500 message.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ErrorResponse(ctx, fiberErr.Code, fiberErr.Message)
		}

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return ErrorResponse(ctx, statusForKind(appErr.Kind), appErr.Message)
		}

		return ErrorResponse(ctx, fiber.StatusInternalServerError, "internal server error")
	}
}

func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return fiber.StatusBadRequest
	case apperrors.KindAuthorization:
		return fiber.StatusForbidden
	case apperrors.KindInvalidState:
		return fiber.StatusConflict
	case apperrors.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
