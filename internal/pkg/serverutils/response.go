// FILE: internal/pkg/serverutils/response.go
package serverutils

import "github.com/gofiber/fiber/v2"

type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](ctx *fiber.Ctx, message string, data T) error {
	return ctx.JSON(APIResponse[T]{
		Success: true,
		Code:    fiber.StatusOK,
		Message: message,
		Data:    data,
	})
}

func CreatedResponse[T any](ctx *fiber.Ctx, message string, data T) error {
	return ctx.Status(fiber.StatusCreated).JSON(APIResponse[T]{
		Success: true,
		Code:    fiber.StatusCreated,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(ctx *fiber.Ctx, code int, message string) error {
	return ctx.Status(code).JSON(fiber.Map{
		"success": false,
		"code":    code,
		"message": message,
	})
}
