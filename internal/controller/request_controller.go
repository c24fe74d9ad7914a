// FILE: internal/controller/request_controller.go
package controller

import (
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/dto"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/serverutils"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRequestController interface {
	RegisterRoutes(r fiber.Router)
}

type requestController struct {
	service service.IRequestService
	auth    fiber.Handler
}

func NewRequestController(service service.IRequestService, auth fiber.Handler) IRequestController {
	return &requestController{service: service, auth: auth}
}

func (c *requestController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/requests")
	h.Use(c.auth)

	// Customer routes
	customer := h.Group("", serverutils.RequireRole(string(entity.UserRoleCustomer)))
	customer.Post("/", c.Create)
	customer.Get("/mine", c.ListMine)
	customer.Put("/:id", c.Update)
	customer.Post("/:id/cancel", c.Cancel)
	customer.Post("/:id/close", c.Close)

	// Professional routes
	pro := h.Group("", serverutils.RequireRole(string(entity.UserRoleProfessional)))
	pro.Get("/available", c.ListAvailable)
	pro.Get("/assigned", c.ListAssigned)
	pro.Post("/:id/accept", c.Accept)
	pro.Post("/:id/reject", c.Reject)
	pro.Post("/:id/complete", c.Complete)

	// Admin routes
	admin := h.Group("", serverutils.RequireRole(string(entity.UserRoleAdmin)))
	admin.Get("/", c.ListAll)

	// Rejection history, role resolved in the service. Registered before
	// the catch-all :id route.
	h.Get("/rejections", c.ListRejections)
	h.Get("/:id/rejections", c.ListRequestRejections)

	h.Get("/:id", c.Show)
}

func (c *requestController) ListRejections(ctx *fiber.Ctx) error {
	userID, err := userIDFromLocals(ctx)
	if err != nil {
		return err
	}
	role, _ := ctx.Locals("role").(string)

	filter := dto.RejectionFilter{
		Limit:  ctx.QueryInt("limit", 50),
		Offset: ctx.QueryInt("offset", 0),
	}
	if raw := ctx.Query("service_request_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.ServiceRequestId = &id
		}
	}
	if raw := ctx.Query("professional_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.ProfessionalId = &id
		}
	}

	res, err := c.service.ListRejections(ctx.UserContext(), userID, role, filter)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "OK", res)
}

func (c *requestController) ListRequestRejections(ctx *fiber.Ctx) error {
	userID, err := userIDFromLocals(ctx)
	if err != nil {
		return err
	}
	role, _ := ctx.Locals("role").(string)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request id")
	}

	res, err := c.service.ListRequestRejections(ctx.UserContext(), userID, role, id)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "OK", res)
}

func (c *requestController) Create(ctx *fiber.Ctx) error {
	userID, err := userIDFromLocals(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateServiceRequestRequest
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
	return serverutils.CreatedResponse(ctx, "Service request created", res)
}

func (c *requestController) ListMine(ctx *fiber.Ctx) error {
	userID, err := userIDFromLocals(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListMine(ctx.UserContext(), userID, ctx.Query("status"))
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "OK", res)
}

func (c *requestController) Update(ctx *fiber.Ctx) error {
	userID, err := userIDFromLocals(ctx)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request id")
	}

	var req dto.UpdateServiceRequestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	req.Id = id

	res, err := c.service.Update(ctx.UserContext(), userID, req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "Service request updated", res)
}

func (c *requestController) Cancel(ctx *fiber.Ctx) error {
	userID, err := userIDFromLocals(ctx)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request id")
	}

	if err := c.service.Cancel(ctx.UserContext(), userID, id); err != nil {
		return err
	}
	return serverutils.SuccessResponse[any](ctx, "Service request cancelled", nil)
}

func (c *requestController) Close(ctx *fiber.Ctx) error {
	userID, err := userIDFromLocals(ctx)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request id")
	}

	if err := c.service.Close(ctx.UserContext(), userID, id); err != nil {
		return err
	}
	return serverutils.SuccessResponse[any](ctx, "Service request closed", nil)
}

func (c *requestController) ListAvailable(ctx *fiber.Ctx) error {
	userID, err := userIDFromLocals(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListAvailable(ctx.UserContext(), userID, ctx.QueryBool("include_rejected"))
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "OK", res)
}

func (c *requestController) ListAssigned(ctx *fiber.Ctx) error {
	userID, err := userIDFromLocals(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListAssigned(ctx.UserContext(), userID, ctx.Query("status"))
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "OK", res)
}

func (c *requestController) Accept(ctx *fiber.Ctx) error {
	userID, err := userIDFromLocals(ctx)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request id")
	}

	res, err := c.service.Accept(ctx.UserContext(), userID, id)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "Request accepted", res)
}

func (c *requestController) Reject(ctx *fiber.Ctx) error {
	userID, err := userIDFromLocals(ctx)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request id")
	}

	var req dto.RejectServiceRequestRequest
	// Body is optional, a rejection can come without a reason.
	_ = ctx.BodyParser(&req)

	if err := c.service.Reject(ctx.UserContext(), userID, id, req.Reason); err != nil {
		return err
	}
	return serverutils.SuccessResponse[any](ctx, "Request rejected", nil)
}

func (c *requestController) Complete(ctx *fiber.Ctx) error {
	userID, err := userIDFromLocals(ctx)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request id")
	}

	res, err := c.service.Complete(ctx.UserContext(), userID, id)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "Request completed", res)
}

func (c *requestController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "invalid request id")
	}

	res, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, "OK", res)
}

func (c *requestController) ListAll(ctx *fiber.Ctx) error {
	filter := dto.AdminRequestFilter{
		Status: ctx.Query("status"),
		Limit:  ctx.QueryInt("limit", 50),
		Offset: ctx.QueryInt("offset", 0),
	}
	if raw := ctx.Query("service_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.ServiceId = &id
		}
	}
	if raw := ctx.Query("customer_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.CustomerId = &id
		}
	}
	if raw := ctx.Query("professional_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.ProfessionalId = &id
		}
	}
	if raw := ctx.Query("from"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.From = &t
		}
	}
	if raw := ctx.Query("to"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.To = &t
		}
	}

	res, total, err := c.service.ListAll(ctx.UserContext(), filter)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    fiber.StatusOK,
		"message": "OK",
		"data":    res,
		"total":   total,
	})
}
