package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/chiragSahani/copilot-inbox/internal/client"
)

// DirectoryHandler handles user and team endpoints.
type DirectoryHandler struct {
	api    *client.Client
	logger *zap.Logger
}

// NewDirectoryHandler creates a new directory handler.
func NewDirectoryHandler(api *client.Client, log *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		api:    api,
		logger: log,
	}
}

// Users handles GET /api/v1/users
func (h *DirectoryHandler) Users(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, h.api.GetUsers(r.Context()))
}

// Teams handles GET /api/v1/teams
func (h *DirectoryHandler) Teams(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, h.api.GetTeams(r.Context()))
}
