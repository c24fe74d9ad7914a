// FILE: internal/controller/auth_controller.go
package controller

import (
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/dto"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/serverutils"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Refresh(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
	auth    fiber.Handler
}

func NewAuthController(service service.IAuthService, auth fiber.Handler) IAuthController {
	return &authController{service: service, auth: auth}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
	h.Post("/refresh", c.auth, c.Refresh)
	h.Post("/logout", c.auth, c.Logout)
}

func (c *authController) Refresh(ctx *fiber.Ctx) error {
	userID, err := userIDFromLocals(ctx)
	if err != nil {
		return err
	}
	jti, _ := ctx.Locals("jti").(string)
	var expiresAt time.Time
	if exp, ok := ctx.Locals("exp").(int64); ok {
		expiresAt = time.Unix(exp, 0)
	}

	res, err := c.service.Refresh(ctx.UserContext(), userID, jti, expiresAt)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "Token refreshed", res)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return serverutils.CreatedResponse(ctx, "Registered successfully", res)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "Login successful", res)
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	jti, _ := ctx.Locals("jti").(string)
	var expiresAt time.Time
	if exp, ok := ctx.Locals("exp").(int64); ok {
		expiresAt = time.Unix(exp, 0)
	}

	// Revocation failures are not surfaced, the client drops the token
	// either way.
	_ = c.service.Logout(ctx.UserContext(), jti, expiresAt)

	return serverutils.SuccessResponse[any](ctx, "Logged out successfully", nil)
}
