package controller

import (
	"support-chat-be/internal/dto"
	"support-chat-be/internal/pkg/serverutils"
	"support-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILeadController interface {
	RegisterRoutes(r fiber.Router)
	Capture(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type leadController struct {
	leadService service.ILeadService
}

func NewLeadController(leadService service.ILeadService) ILeadController {
	return &leadController{
		leadService: leadService,
	}
}

func (c *leadController) RegisterRoutes(r fiber.Router) {
	r.Post("/:brand/leads", c.Capture)
	r.Get("/:brand/leads", c.List)
}

func (c *leadController) Capture(ctx *fiber.Ctx) error {
	brandKey := ctx.Params("brand")

	var req dto.CaptureLeadRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.leadService.Capture(ctx.Context(), brandKey, &req)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *leadController) List(ctx *fiber.Ctx) error {
	brandKey := ctx.Params("brand")
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.leadService.List(ctx.Context(), brandKey, limit, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return ctx.JSON(res)
}
