package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/chiragSahani/copilot-inbox/internal/client"
	"github.com/chiragSahani/copilot-inbox/internal/model"
)

// KnowledgeHandler handles knowledge base endpoints.
type KnowledgeHandler struct {
	api    *client.Client
	logger *zap.Logger
}

// NewKnowledgeHandler creates a new knowledge handler.
func NewKnowledgeHandler(api *client.Client, log *zap.Logger) *KnowledgeHandler {
	return &KnowledgeHandler{
		api:    api,
		logger: log,
	}
}

// List handles GET /api/v1/knowledge
func (h *KnowledgeHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeEnvelope(w, h.api.GetKnowledgeSources(r.Context(), model.KnowledgeParams{
		Search:   q.Get("search"),
		Category: q.Get("category"),
	}))
}

// Relevant handles GET /api/v1/knowledge/relevant?query=...
func (h *KnowledgeHandler) Relevant(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	writeEnvelope(w, h.api.GetRelevantKnowledgeSources(r.Context(), query))
}
