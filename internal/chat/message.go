// Package chat holds the conversation domain model shared by the server,
// the messaging client and the widget.
package chat

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies who produced a message. The values double as the wire
// roles expected by the model API.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "model"
)

// Message is a single conversation entry. Messages are immutable once
// created and live only for the session; nothing is persisted.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// NewUserMessage creates a message authored by the end user.
func NewUserMessage(text string) Message {
	return newMessage(text, SenderUser)
}

// NewBotMessage creates a message authored by the agent.
func NewBotMessage(text string) Message {
	return newMessage(text, SenderBot)
}

func newMessage(text string, sender Sender) Message {
	return Message{
		ID:        uuid.New().String(),
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now(),
	}
}
