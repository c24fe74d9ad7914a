package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// userIDFromLocals reads the authenticated user's id set by the JWT
// middleware.
func userIDFromLocals(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := ctx.Locals("user_id").(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return userID, nil
}
