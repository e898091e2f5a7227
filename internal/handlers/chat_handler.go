package handlers

import (
	"context"
	"log"
	"net/http"

	"soulconnect-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	Service *service.ChatService
}

func NewChatHandler(s *service.ChatService) *ChatHandler {
	return &ChatHandler{Service: s}
}

type chatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// Chat never returns a server error to the client: a broken pipeline still
// answers with the friendly fallback.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	result, err := h.Service.Chat(context.Background(), req.UserID, req.Message)
	if err != nil {
		log.Printf("chat pipeline failed for %s: %v", req.UserID, err)
		c.JSON(http.StatusOK, service.FallbackResult())
		return
	}
	c.JSON(http.StatusOK, result)
}
