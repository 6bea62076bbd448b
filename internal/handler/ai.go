package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/chiragSahani/copilot-inbox/internal/ai"
	"github.com/chiragSahani/copilot-inbox/internal/client"
	"github.com/chiragSahani/copilot-inbox/internal/llm"
	"github.com/chiragSahani/copilot-inbox/pkg/metrics"
)

const defaultSystemPrompt = "You are a helpful assistant."

// AIHandler handles the text generation endpoints. When no provider
// client is configured it falls back to the demo backend's canned
// responses, so both endpoints work without API keys.
type AIHandler struct {
	llm    llm.Client
	api    *client.Client
	logger *zap.Logger
}

// NewAIHandler creates a new AI handler. llmClient may be nil.
func NewAIHandler(llmClient llm.Client, api *client.Client, log *zap.Logger) *AIHandler {
	return &AIHandler{
		llm:    llmClient,
		api:    api,
		logger: log,
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
	System string `json:"system"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// Generate handles POST /api/ai
func (h *AIHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "Prompt is required")
		return
	}

	system := req.System
	if system == "" {
		system = defaultSystemPrompt
	}

	if h.llm == nil {
		resp := h.api.GenerateAIResponse(r.Context(), req.Prompt, "")
		if !resp.Success || resp.Data == nil {
			writeError(w, resp.Status, resp.Error)
			return
		}
		writeJSON(w, http.StatusOK, generateResponse{Text: resp.Data.Text})
		return
	}

	resp, err := h.llm.Complete(r.Context(), &llm.CompletionRequest{
		System: system,
		Messages: []llm.ChatMessage{
			{Role: "user", Content: req.Prompt},
		},
		MaxTokens:   llm.DefaultMaxTokens,
		Temperature: llm.DefaultTemperature,
	})
	if err != nil {
		h.logger.Error("text generation failed",
			zap.String("provider", h.llm.Name()),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to generate text")
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{Text: resp.Content})
}

type chatRequest struct {
	Messages            []llm.ChatMessage `json:"messages"`
	Query               string            `json:"query"`
	ConversationHistory string            `json:"conversationHistory"`
}

// Chat handles POST /api/chat, streaming the reply as newline-separated
// "data: {json}" chunks terminated by "data: [DONE]".
func (h *AIHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, "Query is required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	metrics.ChatStreamsActive.Inc()
	defer metrics.ChatStreamsActive.Dec()

	start := time.Now()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	writeChunk := func(text string) {
		payload, err := json.Marshal(map[string]string{
			"type": "text-delta",
			"text": text,
		})
		if err != nil {
			return
		}
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	}

	if h.llm == nil {
		resp := h.api.StreamAIResponse(r.Context(), req.Query, req.ConversationHistory, writeChunk)
		if !resp.Success {
			h.logger.Warn("canned stream failed", zap.String("error", resp.Error))
			writeChunk(ai.Apology)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
		flusher.Flush()
		metrics.RecordLLMStream("canned", "ok", time.Since(start).Seconds())
		return
	}

	prompt := ai.BuildPrompt(req.Query, req.ConversationHistory)
	messages := append(req.Messages, llm.ChatMessage{Role: "user", Content: prompt})

	_, err := h.llm.CompleteStream(r.Context(), &llm.CompletionRequest{
		System:      ai.Persona,
		Messages:    messages,
		MaxTokens:   llm.DefaultMaxTokens,
		Temperature: llm.DefaultTemperature,
	}, func(token string, index int) error {
		writeChunk(token)
		return nil
	})
	if err != nil {
		h.logger.Error("chat stream failed",
			zap.String("provider", h.llm.Name()),
			zap.Error(err))
		writeChunk(ai.Apology)
		metrics.RecordLLMStream(h.llm.Name(), "error", time.Since(start).Seconds())
	} else {
		metrics.RecordLLMStream(h.llm.Name(), "ok", time.Since(start).Seconds())
	}

	fmt.Fprint(w, "data: [DONE]\n\n")
	flusher.Flush()
}
