package handlers

import (
	"net/http"
	"strings"

	"innocurve/models"
	"innocurve/services/chat"
	"innocurve/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler serves the chat widget endpoint.
type ChatHandler struct {
	Service chat.ChatService
}

func NewChatHandler(svc chat.ChatService) *ChatHandler {
	return &ChatHandler{Service: svc}
}

// HandleChat resolves one chat message. Empty or missing messages are
// rejected here, before the lookup or the generative service is touched.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	locale := chat.LocaleFor(req.Language)
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": locale.EmptyMessage})
		return
	}

	resp, err := h.Service.HandleMessage(c.Request.Context(), req)
	if err != nil {
		logger.Error("chat resolution failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": locale.ServerError})
		return
	}
	c.JSON(http.StatusOK, resp)
}
