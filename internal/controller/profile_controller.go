// FILE: internal/controller/profile_controller.go
package controller

import (
	"github.com/SudeepMalipeddi/Service-Sphere/internal/dto"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/serverutils"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router)
}

type profileController struct {
	service service.IProfileService
	auth    fiber.Handler
}

func NewProfileController(service service.IProfileService, auth fiber.Handler) IProfileController {
	return &profileController{service: service, auth: auth}
}

func (c *profileController) RegisterRoutes(r fiber.Router) {
	// Public directory of approved professionals
	dir := r.Group("/professionals")
	dir.Get("/", c.Directory)
	dir.Get("/:id", c.DirectoryEntry)

	me := r.Group("/profile", c.auth)
	me.Get("/customer", serverutils.RequireRole(string(entity.UserRoleCustomer)), c.ShowCustomer)
	me.Put("/customer", serverutils.RequireRole(string(entity.UserRoleCustomer)), c.UpdateCustomer)
	me.Get("/professional", serverutils.RequireRole(string(entity.UserRoleProfessional)), c.ShowProfessional)
	me.Put("/professional", serverutils.RequireRole(string(entity.UserRoleProfessional)), c.UpdateProfessional)
}

func (c *profileController) ShowCustomer(ctx *fiber.Ctx) error {
	userID, err := userIDFromLocals(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ShowCustomer(ctx.UserContext(), userID)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "OK", res)
}

func (c *profileController) UpdateCustomer(ctx *fiber.Ctx) error {
	userID, err := userIDFromLocals(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateCustomerProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.UpdateCustomer(ctx.UserContext(), userID, req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "Profile updated", res)
}

func (c *profileController) ShowProfessional(ctx *fiber.Ctx) error {
	userID, err := userIDFromLocals(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ShowProfessional(ctx.UserContext(), userID)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "OK", res)
}

func (c *profileController) UpdateProfessional(ctx *fiber.Ctx) error {
	userID, err := userIDFromLocals(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateProfessionalProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.UpdateProfessional(ctx.UserContext(), userID, req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "Profile updated", res)
}

func (c *profileController) Directory(ctx *fiber.Ctx) error {
	var serviceId *uuid.UUID
	if raw := ctx.Query("service_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid service id")
		}
		serviceId = &id
	}

	res, err := c.service.Directory(ctx.UserContext(), serviceId)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "OK", res)
}

func (c *profileController) DirectoryEntry(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid professional id")
	}

	res, err := c.service.DirectoryEntry(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "OK", res)
}
