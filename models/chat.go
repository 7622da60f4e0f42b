package models

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies which side of the conversation produced a message
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is a single message in a conversation
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChatMessage creates a message with a fresh ID and the current time
func NewChatMessage(content string, sender Sender) ChatMessage {
	return ChatMessage{
		ID:        uuid.New(),
		Content:   content,
		Sender:    sender,
		Timestamp: time.Now(),
	}
}

// Conversation is an append-only ordered message sequence for one session.
// It lives only in memory; nothing survives a server restart.
type Conversation struct {
	ID       uuid.UUID     `json:"id"`
	Messages []ChatMessage `json:"messages"`
}

// Append adds a message to the end of the conversation
func (c *Conversation) Append(msg ChatMessage) {
	c.Messages = append(c.Messages, msg)
}
