package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/chiragSahani/copilot-inbox/internal/client"
)

// NotificationHandler handles notification endpoints.
type NotificationHandler struct {
	api    *client.Client
	logger *zap.Logger
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(api *client.Client, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		api:    api,
		logger: log,
	}
}

// List handles GET /api/v1/notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, h.api.GetNotifications(r.Context()))
}

// MarkRead handles POST /api/v1/notifications/{id}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, h.api.MarkNotificationRead(r.Context(), chi.URLParam(r, "id")))
}
