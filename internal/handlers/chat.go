// internal/handlers/chat.go
package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/medhub/medhub-backend/internal/services"
	"github.com/medhub/medhub-backend/internal/utils"
)

type ChatHandler struct {
	chatService *services.ChatService
}

type createConversationRequest struct {
	Title string `json:"title,omitempty"`
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// GET /api/conversations
func (h *ChatHandler) ListConversations(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	conversations, err := h.chatService.ListConversations(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.OKResponse(c, conversations)
}

// POST /api/conversations
func (h *ChatHandler) CreateConversation(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req createConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", "")
		return
	}

	conversation, err := h.chatService.CreateConversation(userID, req.Title)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.CreatedResponse(c, conversation)
}

// GET /api/conversations/:id
func (h *ChatHandler) GetConversation(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.NotFoundResponse(c, "Conversation not found")
		return
	}

	conversation, err := h.chatService.GetConversation(userID, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrConversationNotFound) {
			utils.NotFoundResponse(c, "Conversation not found")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.OKResponse(c, conversation)
}

// POST /api/conversations/:id/messages (SSE response)
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.NotFoundResponse(c, "Conversation not found")
		return
	}

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", "")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		utils.BadRequestResponse(c, "content is required", "content")
		return
	}

	if err := h.chatService.StreamMessage(c, userID, uint(id), req.Content); err != nil {
		if errors.Is(err, services.ErrConversationNotFound) {
			utils.NotFoundResponse(c, "Conversation not found")
			return
		}
		utils.InternalErrorResponse(c, "Assistant is unavailable")
	}
}
