// internal/services/chat_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/medhub/medhub-backend/internal/config"
	"github.com/medhub/medhub-backend/internal/models"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrAssistantDisabled    = errors.New("assistant is not configured")
)

// ChatService relays conversation messages to an OpenAI-compatible
// completion provider and forwards incremental tokens to the client
// over a text event stream.
type ChatService struct {
	db      *gorm.DB
	cfg     config.AssistantConfig
	client  openai.Client
	enabled bool
}

func NewChatService(db *gorm.DB, cfg config.AssistantConfig) *ChatService {
	s := &ChatService{
		db:  db,
		cfg: cfg,
	}

	if cfg.APIKey == "" {
		return s
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	s.client = openai.NewClient(opts...)
	s.enabled = true
	return s
}

func (s *ChatService) ListConversations(userID uuid.UUID) ([]models.Conversation, error) {
	var conversations []models.Conversation
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&conversations).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch conversations: %w", err)
	}
	if conversations == nil {
		conversations = []models.Conversation{}
	}
	return conversations, nil
}

func (s *ChatService) CreateConversation(userID uuid.UUID, title string) (*models.Conversation, error) {
	if title == "" {
		title = "New conversation"
	}

	conversation := &models.Conversation{
		UserID:   userID,
		Title:    title,
		Messages: []models.ChatMessage{},
	}
	if err := s.db.Create(conversation).Error; err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return conversation, nil
}

// GetConversation returns the conversation with its messages in order.
// Scoped to the owning user; other users get not-found.
func (s *ChatService) GetConversation(userID uuid.UUID, id uint) (*models.Conversation, error) {
	var conversation models.Conversation
	err := s.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC, id ASC")
	}).Where("id = ? AND user_id = ?", id, userID).First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	if conversation.Messages == nil {
		conversation.Messages = []models.ChatMessage{}
	}
	return &conversation, nil
}

// StreamMessage stores the user's message, streams the completion back
// as SSE events (`data: {"content": ...}` deltas followed by
// `data: {"done": true}`) and persists the assistant reply once the
// upstream stream ends.
func (s *ChatService) StreamMessage(c *gin.Context, userID uuid.UUID, conversationID uint, content string) error {
	if !s.enabled {
		return ErrAssistantDisabled
	}

	conversation, err := s.GetConversation(userID, conversationID)
	if err != nil {
		return err
	}

	userMessage := &models.ChatMessage{
		ConversationID: conversation.ID,
		Role:           models.ChatRoleUser,
		Content:        content,
	}
	if err := s.db.Create(userMessage).Error; err != nil {
		return fmt.Errorf("failed to store message: %w", err)
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(conversation.Messages)+2)
	messages = append(messages, openai.SystemMessage(s.cfg.SystemPrompt))
	for _, m := range conversation.Messages {
		if m.Role == models.ChatRoleAssistant {
			messages = append(messages, openai.AssistantMessage(m.Content))
		} else {
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}
	messages = append(messages, openai.UserMessage(content))

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	sendEvent := func(payload gin.H) {
		c.SSEvent("", payload)
		c.Writer.Flush()
	}

	stream := s.client.Chat.Completions.NewStreaming(c.Request.Context(), openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(s.cfg.Model),
		Messages: messages,
	})
	defer stream.Close()

	var assistantContent string
	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		delta := chunk.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		assistantContent += delta
		sendEvent(gin.H{"content": delta})
	}

	if err := stream.Err(); err != nil && !errors.Is(err, context.Canceled) {
		logrus.WithError(err).Error("Chat completion stream failed")
		sendEvent(gin.H{"error": "assistant stream failed"})
		return nil
	}

	if assistantContent != "" {
		assistantMessage := &models.ChatMessage{
			ConversationID: conversation.ID,
			Role:           models.ChatRoleAssistant,
			Content:        assistantContent,
		}
		if err := s.db.Create(assistantMessage).Error; err != nil {
			logrus.WithError(err).Error("Failed to store assistant message")
		}
	}

	sendEvent(gin.H{"done": true})
	return nil
}
