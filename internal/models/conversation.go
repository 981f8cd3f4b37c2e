// internal/models/conversation.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is an AI-assistant chat session owned by a user.
type Conversation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	Title     string    `json:"title" gorm:"size:255"`
	CreatedAt time.Time `json:"createdAt"`

	Messages []ChatMessage `json:"messages" gorm:"foreignKey:ConversationID"`
}

// ChatMessage is one turn of a conversation, user or assistant.
type ChatMessage struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ConversationID uint      `json:"conversationId" gorm:"not null;index"`
	Role           ChatRole  `json:"role" gorm:"type:varchar(20);not null"`
	Content        string    `json:"content" gorm:"type:text;not null"`
	CreatedAt      time.Time `json:"createdAt"`
}
