package handlers

import (
	"net/http"
	"strings"

	"brightnest/middleware"
	"brightnest/services/intelligence"
	"brightnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIHandler serves the chat assistant.
type AIHandler struct {
	Service intelligence.AIService
	Logger  *zap.Logger
}

func NewAIHandler(service intelligence.AIService, logger *zap.Logger) *AIHandler {
	return &AIHandler{Service: service, Logger: logger}
}

// ChatHandler sends one user message through the assistant.
func (h *AIHandler) ChatHandler(c *gin.Context) {
	actor := middleware.GetActor(c)
	if actor == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	var input struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Message) == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "message is required")
		return
	}

	reply, err := h.Service.Chat(c.Request.Context(), actor.UserID, input.Message)
	if err != nil {
		h.Logger.Error("assistant chat failed", zap.String("userID", actor.UserID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "assistant unavailable", "please try again later")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// ResetChatHandler clears the stored conversation.
func (h *AIHandler) ResetChatHandler(c *gin.Context) {
	actor := middleware.GetActor(c)
	if actor == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	if err := h.Service.Reset(c.Request.Context(), actor.UserID); err != nil {
		h.Logger.Error("failed to reset conversation", zap.String("userID", actor.UserID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to reset conversation", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
