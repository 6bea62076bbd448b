package model

import (
	"time"
)

// Sender identifies who authored a message.
type Sender string

const (
	SenderCustomer Sender = "customer"
	SenderAgent    Sender = "agent"
	SenderSystem   Sender = "system"
	SenderAI       Sender = "ai"
)

// Message is one entry in a conversation. Messages are append-only; edits
// are out of scope.
type Message struct {
	ID          string       `json:"id"`
	Content     string       `json:"content"`
	Sender      Sender       `json:"sender"`
	Timestamp   time.Time    `json:"timestamp"`
	Attachments []Attachment `json:"attachments,omitempty"`
	Reactions   []Reaction   `json:"reactions,omitempty"`
	Edited      bool         `json:"edited,omitempty"`
	Status      string       `json:"status,omitempty"`
}

// Attachment is a file attached to a message.
type Attachment struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// Reaction is an emoji reaction on a message.
type Reaction struct {
	Emoji     string    `json:"emoji"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// MessageInput is a message as submitted by a caller, before the service
// assigns an ID. A zero Timestamp means "now".
type MessageInput struct {
	Content     string       `json:"content"`
	Sender      Sender       `json:"sender"`
	Timestamp   time.Time    `json:"timestamp,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}
