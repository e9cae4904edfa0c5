package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweet-moments/storefront-api/internal/models"
	"github.com/sweet-moments/storefront-api/internal/observability"
	"github.com/sweet-moments/storefront-api/internal/services"
	"go.uber.org/zap"
)

// AssistantHandlers proxies generative requests from the storefront
type AssistantHandlers struct {
	assistant *services.AssistantService
	logger    *zap.Logger
}

// NewAssistantHandlers creates a new AssistantHandlers instance
func NewAssistantHandlers(assistant *services.AssistantService) *AssistantHandlers {
	return &AssistantHandlers{
		assistant: assistant,
		logger:    observability.Logger(),
	}
}

// Explain godoc
// @Summary Generate a short description for a catalogue term
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body models.ExplainRequest true "Term to describe"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Router /assistant/explain [post]
func (h *AssistantHandlers) Explain(c *gin.Context) {
	var req models.ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return
	}

	// Explain never fails; it falls back to a canned description.
	text := h.assistant.Explain(c.Request.Context(), req.Term, req.Category)
	c.JSON(http.StatusOK, gin.H{"text": text})
}

// Mockup godoc
// @Summary Generate a cake mockup image from order selections
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body models.MockupRequest true "Cake selections"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /assistant/mockup [post]
func (h *AssistantHandlers) Mockup(c *gin.Context) {
	var req models.MockupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return
	}

	image, err := h.assistant.Mockup(c.Request.Context(), &req)
	if err != nil {
		h.logger.Warn("mockup generation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Mockup generation is temporarily unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image": image})
}

// chatFallback is returned when the chat webhook is unreachable; the widget
// renders it as a normal reply.
const chatFallback = "I'm having a bit of trouble connecting. Please try again in a moment!"

// Chat godoc
// @Summary Forward a chat message to the storefront assistant
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Chat message"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} ErrorResponse
// @Router /chat [post]
func (h *AssistantHandlers) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return
	}

	output, err := h.assistant.Chat(c.Request.Context(), &req)
	if err != nil {
		if !errors.Is(err, models.ErrChatNotConfigured) {
			h.logger.Warn("chat relay failed", zap.Error(err))
		}
		c.JSON(http.StatusOK, models.ChatResponse{Output: chatFallback})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Output: output})
}
