package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lalith-99/taskflow/internal/store"
)

type MessageHandler struct {
	messages store.MessageStore
	logger   *zap.Logger
}

func NewMessageHandler(messages store.MessageStore, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{messages: messages, logger: logger}
}

type createMessageRequest struct {
	SenderID    string `json:"sender_id"`
	Content     string `json:"content"`
	ChatType    string `json:"chat_type"`
	RecipientID string `json:"recipient_id"`
}

// Create handles POST /api/messages
func (h *MessageHandler) Create(c *gin.Context) {
	var req createMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ChatType == "" {
		req.ChatType = "project"
	}

	msg, err := h.messages.Create(c.Request.Context(), store.MessageParams{
		SenderID:    req.SenderID,
		Content:     req.Content,
		ChatType:    req.ChatType,
		RecipientID: req.RecipientID,
	})
	if err != nil {
		h.logger.Error("failed to create message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create message"})
		return
	}

	c.JSON(http.StatusOK, msg)
}

// List handles GET /api/messages
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.messages.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list messages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}
