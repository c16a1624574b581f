package handlers

import (
	"errors"
	"strings"

	"donorly/internal/core/services"
	"donorly/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ChatHandler handles the donor assistant endpoint
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatRequest represents chat request body
type ChatRequest struct {
	Message string `json:"message"`
}

// Ask proxies a question to the assistant model
// @Summary Ask the assistant
// @Description Forward a donor question to the configured language model
// @Tags Chat
// @Accept json
// @Produce json
// @Param body body ChatRequest true "Question"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /chat [post]
func (h *ChatHandler) Ask(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Message) == "" {
		return response.BadRequest(c, "Message is required")
	}

	reply, err := h.chatService.Ask(c.Context(), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChatDisabled):
			return response.ServiceUnavailable(c, "Chat assistant is not configured")
		case errors.Is(err, services.ErrChatUnavailable):
			return response.ServiceUnavailable(c, "Chat assistant unavailable")
		default:
			return response.InternalServerError(c, "Failed to get a reply")
		}
	}

	return response.Success(c, "", fiber.Map{"reply": reply})
}
