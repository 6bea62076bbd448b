// Package model defines data structures for the support inbox.
package model

import (
	"time"
)

// Category classifies a conversation.
type Category string

const (
	CategorySupport Category = "support"
	CategoryOrders  Category = "orders"
	CategoryGeneral Category = "general"
)

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategorySupport, CategoryOrders, CategoryGeneral:
		return true
	}
	return false
}

// Customer is the person on the other side of a conversation. Identity is
// the ID; customers are immutable once created.
type Customer struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Company   string     `json:"company,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Conversation is a thread of messages with one customer.
//
// Invariant: after any append, LastMessage and UpdatedAt mirror the final
// element of Messages.
type Conversation struct {
	ID          string    `json:"id"`
	Customer    Customer  `json:"customer"`
	Messages    []Message `json:"messages"`
	LastMessage string    `json:"last_message"`
	UpdatedAt   time.Time `json:"updated_at"`
	Category    Category  `json:"category"`
	Unread      int       `json:"unread"`
	Status      string    `json:"status,omitempty"`
	Priority    string    `json:"priority,omitempty"`
	AssignedTo  string    `json:"assigned_to,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
}

// ListConversationsParams are the filters for listing conversations.
// Filters apply in order: search, category, sort, pagination.
type ListConversationsParams struct {
	// Page is 1-based. Zero means the default (page 1) and also marks the
	// request as an initial-load path, which skips injected failures.
	Page     int
	Limit    int
	Search   string
	Category string
	// Sort is "field:direction", e.g. "date:desc" or "name:asc".
	Sort string
}

// ConversationPage is one page of conversation list results.
type ConversationPage struct {
	Conversations []Conversation `json:"conversations"`
	Total         int            `json:"total"`
	Page          int            `json:"page"`
	TotalPages    int            `json:"total_pages"`
}

// CreateConversationRequest opens a new conversation with an initial
// customer-authored message.
type CreateConversationRequest struct {
	Customer Customer `json:"customer"`
	Message  string   `json:"message"`
	Category Category `json:"category"`
}
