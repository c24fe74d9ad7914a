// FILE: internal/controller/review_controller.go
package controller

import (
	"github.com/SudeepMalipeddi/Service-Sphere/internal/dto"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/serverutils"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReviewController interface {
	RegisterRoutes(r fiber.Router)
}

type reviewController struct {
	service service.IReviewService
	auth    fiber.Handler
}

func NewReviewController(service service.IReviewService, auth fiber.Handler) IReviewController {
	return &reviewController{service: service, auth: auth}
}

func (c *reviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reviews")

	// Public reads
	h.Get("/professional/:id", c.ListForProfessional)
	h.Get("/request/:id", c.ShowForRequest)

	customer := h.Group("", c.auth, serverutils.RequireRole(string(entity.UserRoleCustomer)))
	customer.Post("/", c.Create)
	customer.Put("/:id", c.Update)
	customer.Delete("/:id", c.Delete)
}

func (c *reviewController) Create(ctx *fiber.Ctx) error {
	userID, err := userIDFromLocals(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateReviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), userID, req)
	if err != nil {
		return err
	}
	return serverutils.CreatedResponse(ctx, "Review created", res)
}

func (c *reviewController) Update(ctx *fiber.Ctx) error {
	userID, err := userIDFromLocals(ctx)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid review id")
	}

	var req dto.UpdateReviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.service.Update(ctx.UserContext(), userID, req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "Review updated", res)
}

func (c *reviewController) Delete(ctx *fiber.Ctx) error {
	userID, err := userIDFromLocals(ctx)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid review id")
	}

	if err := c.service.Delete(ctx.UserContext(), userID, id); err != nil {
		return err
	}
	return serverutils.SuccessResponse[any](ctx, "Review deleted", nil)
}

func (c *reviewController) ShowForRequest(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request id")
	}

	res, err := c.service.ShowForRequest(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "OK", res)
}

func (c *reviewController) ListForProfessional(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid professional id")
	}

	res, err := c.service.ListForProfessional(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "OK", res)
}
