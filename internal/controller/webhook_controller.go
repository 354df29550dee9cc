package controller

import (
	"support-chat-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// IWebhookController handles the WhatsApp Business webhook handshake and
// inbound event delivery.
type IWebhookController interface {
	RegisterRoutes(r fiber.Router)
	Verify(ctx *fiber.Ctx) error
	Receive(ctx *fiber.Ctx) error
}

type webhookController struct {
	verifyToken string
	logger      logger.ILogger
}

func NewWebhookController(verifyToken string, logger logger.ILogger) IWebhookController {
	return &webhookController{
		verifyToken: verifyToken,
		logger:      logger,
	}
}

func (c *webhookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/whatsapp")
	h.Get("/webhook", c.Verify)
	h.Post("/webhook", c.Receive)
}

// Verify answers the Meta subscription handshake: echo hub.challenge as
// plain text when the mode and token match, 403 otherwise.
func (c *webhookController) Verify(ctx *fiber.Ctx) error {
	mode := ctx.Query("hub.mode")
	token := ctx.Query("hub.verify_token")
	challenge := ctx.Query("hub.challenge")

	if mode == "subscribe" && token == c.verifyToken {
		c.logger.Info("webhook", "whatsapp webhook verified", nil)
		return ctx.Status(fiber.StatusOK).SendString(challenge)
	}

	c.logger.Warn("webhook", "whatsapp webhook verification rejected", map[string]interface{}{
		"mode": mode,
	})
	return fiber.NewError(fiber.StatusForbidden, "verification failed")
}

// Receive acknowledges inbound WhatsApp events. Delivery must always be
// acked quickly or Meta retries and eventually disables the webhook;
// processing stays log-only for now.
func (c *webhookController) Receive(ctx *fiber.Ctx) error {
	c.logger.Info("webhook", "whatsapp event received", map[string]interface{}{
		"bytes": len(ctx.Body()),
	})
	return ctx.JSON(fiber.Map{"status": "received"})
}
