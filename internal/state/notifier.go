// Package state holds the client-side state containers: the conversation
// cache and the ephemeral toast notifier. Both are constructed explicitly
// by the application shell and passed by reference; there is no ambient
// lookup.
package state

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies a toast.
type NotificationType string

const (
	NoticeSuccess NotificationType = "success"
	NoticeError   NotificationType = "error"
	NoticeInfo    NotificationType = "info"
	NoticeWarning NotificationType = "warning"
)

// DefaultDuration is how long a toast lives when none is given.
const DefaultDuration = 5 * time.Second

// DurationForever disables auto-expiry.
const DurationForever time.Duration = -1

// Notification is an ephemeral UI toast, unrelated to the server-modeled
// notification list.
type Notification struct {
	ID       string
	Type     NotificationType
	Title    string
	Message  string
	Duration time.Duration
}

// Notifier is a producer/consumer of self-expiring toasts.
type Notifier struct {
	mu            sync.Mutex
	notifications []Notification
	timers        map[string]*time.Timer
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{
		timers: make(map[string]*time.Timer),
	}
}

// Add assigns a random id, appends the toast, and unless the duration is
// DurationForever schedules automatic removal after it elapses (default
// 5s). Returns the assigned id.
func (n *Notifier) Add(notification Notification) string {
	id := uuid.NewString()
	notification.ID = id

	n.mu.Lock()
	defer n.mu.Unlock()

	n.notifications = append(n.notifications, notification)

	if notification.Duration != DurationForever {
		d := notification.Duration
		if d <= 0 {
			d = DefaultDuration
		}
		n.timers[id] = time.AfterFunc(d, func() {
			n.Remove(id)
		})
	}

	return id
}

// Remove deletes a toast immediately. Used both by the expiry timer and
// by explicit dismissal; removing an unknown or already-removed id is a
// no-op.
func (n *Notifier) Remove(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if t, ok := n.timers[id]; ok {
		t.Stop()
		delete(n.timers, id)
	}

	for i := range n.notifications {
		if n.notifications[i].ID == id {
			n.notifications = append(n.notifications[:i], n.notifications[i+1:]...)
			return
		}
	}
}

// Notifications returns a snapshot of the live toasts.
func (n *Notifier) Notifications() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Notification, len(n.notifications))
	copy(out, n.notifications)
	return out
}

// Stop cancels all pending expiry timers.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for id, t := range n.timers {
		t.Stop()
		delete(n.timers, id)
	}
}
