package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/chiragSahani/copilot-inbox/internal/client"
)

// AuthHandler handles session endpoints.
type AuthHandler struct {
	api    *client.Client
	logger *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(api *client.Client, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		api:    api,
		logger: log,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	writeEnvelope(w, h.api.Login(r.Context(), req.Email, req.Password))
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, h.api.Logout(r.Context()))
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, h.api.CurrentUser(r.Context()))
}
