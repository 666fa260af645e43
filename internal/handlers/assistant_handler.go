package handlers

import (
	"badmintonpro/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AssistantHandler handles HTTP requests for the shopping assistant.
type AssistantHandler struct {
	service *services.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(service *services.AssistantService) *AssistantHandler {
	return &AssistantHandler{service: service}
}

// RegisterRoutes registers the assistant routes with the Fiber app.
func (h *AssistantHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/assistant/chat", h.HandleChat)
}

// HandleChat answers the latest user message given the conversation so
// far. The reply is always 200; provider failures are absorbed by the
// scripted fallback.
func (h *AssistantHandler) HandleChat(c *fiber.Ctx) error {
	var body struct {
		Message string                 `json:"message"`
		History []services.ChatMessage `json:"history"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if body.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Message is required",
		})
	}

	reply := h.service.Reply(c.UserContext(), body.History, body.Message)
	return c.JSON(fiber.Map{
		"role": "model",
		"text": reply,
	})
}
