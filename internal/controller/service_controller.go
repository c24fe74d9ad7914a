// FILE: internal/controller/service_controller.go
package controller

import (
	"github.com/SudeepMalipeddi/Service-Sphere/internal/dto"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/serverutils"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IServiceController interface {
	RegisterRoutes(r fiber.Router)
}

type serviceController struct {
	service service.ICatalogService
	auth    fiber.Handler
}

func NewServiceController(service service.ICatalogService, auth fiber.Handler) IServiceController {
	return &serviceController{service: service, auth: auth}
}

func (c *serviceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/services")

	// Public reads
	h.Get("/search", c.Search)
	h.Get("/", c.List)
	h.Get("/:id", c.Show)

	// Catalog management is admin-only
	admin := h.Group("", c.auth, serverutils.RequireRole(string(entity.UserRoleAdmin)))
	admin.Post("/", c.Create)
	admin.Put("/:id", c.Update)
	admin.Delete("/:id", c.Delete)
}

func (c *serviceController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateServiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), req)
	if err != nil {
		return err
	}
	return serverutils.CreatedResponse(ctx, "Service created", res)
}

func (c *serviceController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid service id")
	}

	var req dto.UpdateServiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.service.Update(ctx.UserContext(), req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "Service updated", res)
}

func (c *serviceController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid service id")
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return serverutils.SuccessResponse[any](ctx, "Service deleted", nil)
}

func (c *serviceController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid service id")
	}

	res, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "OK", res)
}

func (c *serviceController) List(ctx *fiber.Ctx) error {
	includeInactive := ctx.QueryBool("include_inactive", false)

	res, err := c.service.List(ctx.UserContext(), includeInactive)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "OK", res)
}

func (c *serviceController) Search(ctx *fiber.Ctx) error {
	res, err := c.service.Search(ctx.UserContext(),
		ctx.Query("q"),
		ctx.QueryInt("limit", 20),
		ctx.QueryInt("offset", 0),
	)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "OK", res)
}
