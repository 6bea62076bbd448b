package model

import (
	"time"
)

// NotificationType classifies a server-side notification.
type NotificationType string

const (
	NotificationMessage    NotificationType = "message"
	NotificationAssignment NotificationType = "assignment"
	NotificationSystem     NotificationType = "system"
	NotificationMention    NotificationType = "mention"
)

// Notification is a server-modeled notification. Created on seed; the
// only mutation is the one-way read flag.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Content   string           `json:"content"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
	RelatedID string           `json:"related_id,omitempty"`
}
