package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ftr-labs/fliphq/internal/services"
)

type AssistantHandler struct {
	assistant *services.AssistantService
}

func NewAssistantHandler(assistant *services.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// Chat handles one FlipBot exchange
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req services.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.assistant.Chat(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInsufficientTokens):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "insufficient tokens"})
		case errors.Is(err, services.ErrAssistantBusy):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, reply)
}
