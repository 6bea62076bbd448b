package service

import (
	"context"
	"net/http"

	"github.com/chiragSahani/copilot-inbox/internal/model"
	"github.com/chiragSahani/copilot-inbox/internal/simulator"
)

// GetNotifications lists server-side notifications.
func (s *DataService) GetNotifications(ctx context.Context) model.Response[[]model.Notification] {
	if err := s.sim.Delay(ctx, simulator.Default); err != nil {
		return model.Fail[[]model.Notification](http.StatusInternalServerError, "request cancelled")
	}

	if s.failInjected("get_notifications") {
		return model.Fail[[]model.Notification](http.StatusInternalServerError, "Failed to fetch notifications")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Notification, len(s.notifications))
	copy(out, s.notifications)
	return model.OK(http.StatusOK, out)
}

// MarkNotificationRead flips the read flag. Idempotent: marking an
// already-read notification succeeds with the same final state.
func (s *DataService) MarkNotificationRead(ctx context.Context, id string) model.Response[*model.Notification] {
	if err := s.sim.Delay(ctx, simulator.Default); err != nil {
		return model.Fail[*model.Notification](http.StatusInternalServerError, "request cancelled")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var notif *model.Notification
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			notif = &s.notifications[i]
			break
		}
	}

	if notif == nil || s.failInjected("mark_notification_read") {
		return model.Fail[*model.Notification](http.StatusNotFound, "Notification not found")
	}

	notif.Read = true

	out := *notif
	return model.OK(http.StatusOK, &out)
}
