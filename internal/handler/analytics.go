package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/chiragSahani/copilot-inbox/internal/client"
)

// AnalyticsHandler handles the analytics endpoint.
type AnalyticsHandler struct {
	api    *client.Client
	logger *zap.Logger
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(api *client.Client, log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		api:    api,
		logger: log,
	}
}

// Get handles GET /api/v1/analytics
func (h *AnalyticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, h.api.GetAnalyticsData(r.Context()))
}
