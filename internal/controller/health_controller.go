package controller

import (
	"support-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	chatService service.IChatService
}

func NewHealthController(chatService service.IChatService) IHealthController {
	return &healthController{
		chatService: chatService,
	}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(c.chatService.Health(ctx.Context()))
}
