// FILE: internal/controller/admin_controller.go
package controller

import (
	"github.com/SudeepMalipeddi/Service-Sphere/internal/dto"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/serverutils"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
}

type adminController struct {
	service service.IAdminService
	auth    fiber.Handler
}

func NewAdminController(service service.IAdminService, auth fiber.Handler) IAdminController {
	return &adminController{service: service, auth: auth}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin", c.auth, serverutils.RequireRole(string(entity.UserRoleAdmin)))
	h.Get("/dashboard", c.Dashboard)
	h.Get("/users", c.ListUsers)
	h.Patch("/users/:id/status", c.SetAccountStatus)
	h.Get("/professionals/pending", c.ListPendingProfessionals)
	h.Post("/professionals/:id/verify", c.VerifyProfessional)
	h.Get("/logs", c.ListLogs)
	h.Get("/logs/:id", c.ShowLog)
}

func (c *adminController) ListLogs(ctx *fiber.Ctx) error {
	res, err := c.service.ListLogs(ctx.UserContext(),
		ctx.Query("level"),
		ctx.QueryInt("limit", 50),
		ctx.QueryInt("offset", 0),
	)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "OK", res)
}

func (c *adminController) ShowLog(ctx *fiber.Ctx) error {
	res, err := c.service.ShowLog(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "OK", res)
}

func (c *adminController) Dashboard(ctx *fiber.Ctx) error {
	res, err := c.service.Dashboard(ctx.UserContext())
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "OK", res)
}

func (c *adminController) ListUsers(ctx *fiber.Ctx) error {
	users, total, err := c.service.ListUsers(ctx.UserContext(),
		ctx.Query("role"),
		ctx.QueryInt("limit", 50),
		ctx.QueryInt("offset", 0),
	)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    fiber.StatusOK,
		"message": "OK",
		"data":    users,
		"total":   total,
	})
}

func (c *adminController) SetAccountStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid user id")
	}

	var req dto.SetAccountStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	if err := c.service.SetAccountStatus(ctx.UserContext(), id, req); err != nil {
		return err
	}
	return serverutils.SuccessResponse[any](ctx, "Account status updated", nil)
}

func (c *adminController) ListPendingProfessionals(ctx *fiber.Ctx) error {
	res, err := c.service.ListPendingProfessionals(ctx.UserContext())
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "OK", res)
}

func (c *adminController) VerifyProfessional(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid professional id")
	}

	var req dto.VerifyProfessionalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}

	if err := c.service.VerifyProfessional(ctx.UserContext(), id, req); err != nil {
		return err
	}
	return serverutils.SuccessResponse[any](ctx, "Verification updated", nil)
}
