package controller

import (
	"support-chat-be/internal/dto"
	"support-chat-be/internal/pkg/serverutils"
	"support-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendChat(ctx *fiber.Ctx) error
	ClearSession(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/clear", c.ClearSession)
	r.Post("/:brand/chat", c.SendChat)
}

func (c *chatController) SendChat(ctx *fiber.Ctx) error {
	brandKey := ctx.Params("brand")

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendChat(ctx.Context(), brandKey, &req)
	if err != nil {
		if ctx.Context().Err() != nil {
			// Client went away mid-generation; nothing useful to send
			return nil
		}
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return ctx.JSON(res)
}

func (c *chatController) ClearSession(ctx *fiber.Ctx) error {
	var req dto.ClearSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.ClearSession(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
