// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/chiragSahani/copilot-inbox/internal/client"
	"github.com/chiragSahani/copilot-inbox/internal/middleware"
	"github.com/chiragSahani/copilot-inbox/internal/model"
)

// ConversationHandler handles conversation endpoints.
type ConversationHandler struct {
	api    *client.Client
	logger *zap.Logger
}

// NewConversationHandler creates a new conversation handler.
func NewConversationHandler(api *client.Client, log *zap.Logger) *ConversationHandler {
	return &ConversationHandler{
		api:    api,
		logger: log,
	}
}

// List handles GET /api/v1/conversations
func (h *ConversationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := model.ListConversationsParams{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Sort:     q.Get("sort"),
	}

	if p := q.Get("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil {
			params.Page = parsed
		}
	}
	if l := q.Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil {
			params.Limit = parsed
		}
	}

	if err := middleware.ValidatePagination(params.Page, params.Limit); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeEnvelope(w, h.api.ListConversations(r.Context(), params))
}

// Create handles POST /api/v1/conversations
func (h *ConversationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateCustomerName(req.Customer.Name); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := middleware.ValidateMessageContent(req.Message); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := middleware.ValidateCategory(string(req.Category)); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeEnvelope(w, h.api.CreateConversation(r.Context(), req))
}

// Get handles GET /api/v1/conversations/{id}
func (h *ConversationHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, h.api.GetConversation(r.Context(), chi.URLParam(r, "id")))
}

// AddMessage handles POST /api/v1/conversations/{id}/messages
func (h *ConversationHandler) AddMessage(w http.ResponseWriter, r *http.Request) {
	var in model.MessageInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateMessageContent(in.Content); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeEnvelope(w, h.api.AddMessage(r.Context(), chi.URLParam(r, "id"), in))
}
