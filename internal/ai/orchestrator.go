package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/chiragSahani/copilot-inbox/internal/llm"
	"github.com/chiragSahani/copilot-inbox/pkg/metrics"
)

// ChunkHandler receives each streamed chunk in arrival order.
type ChunkHandler func(Chunk)

// Orchestrator produces agent-assist replies. The batch path goes
// straight to a provider client; the streaming path consumes the chat
// endpoint's wire format so it exercises the same surface a browser
// client would.
type Orchestrator struct {
	client     llm.Client
	httpClient *http.Client
	endpoint   string
	logger     *zap.Logger
}

// NewOrchestrator creates an orchestrator. client may be nil, in which
// case GenerateReply always falls back to the apology text. endpoint is
// the chat stream URL used by StreamReply.
func NewOrchestrator(client llm.Client, endpoint string, log *zap.Logger) *Orchestrator {
	return &Orchestrator{
		client:     client,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		endpoint:   endpoint,
		logger:     log,
	}
}

// GenerateReply produces a complete reply in one shot. Generation
// failures never propagate: the caller always gets usable text, at
// worst the canned apology.
func (o *Orchestrator) GenerateReply(ctx context.Context, query, conversationHistory string) string {
	if o.client == nil {
		return Apology
	}

	resp, err := o.client.Complete(ctx, &llm.CompletionRequest{
		System: Persona,
		Messages: []llm.ChatMessage{
			{Role: "user", Content: BuildPrompt(query, conversationHistory)},
		},
		MaxTokens:   llm.DefaultMaxTokens,
		Temperature: llm.DefaultTemperature,
	})
	if err != nil {
		o.logger.Warn("reply generation failed",
			zap.String("provider", o.client.Name()),
			zap.Error(err))
		return Apology
	}

	return resp.Content
}

type chatRequest struct {
	Query               string `json:"query"`
	ConversationHistory string `json:"conversationHistory,omitempty"`
}

// StreamReply posts the query to the chat endpoint and consumes the
// response incrementally, invoking onChunk for every decoded chunk in
// order. Transport-level failures are detected before any chunk is
// delivered, so a non-nil error means onChunk was never called.
// Returns the accumulated reply text.
func (o *Orchestrator) StreamReply(ctx context.Context, query, conversationHistory string, onChunk ChunkHandler) (string, error) {
	start := time.Now()

	body, err := json.Marshal(chatRequest{
		Query:               query,
		ConversationHistory: conversationHistory,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		metrics.RecordLLMStream("chat", "error", time.Since(start).Seconds())
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RecordLLMStream("chat", "error", time.Since(start).Seconds())
		return "", fmt.Errorf("chat request failed: status %d", resp.StatusCode)
	}

	var full strings.Builder
	buf := make([]byte, 4096)

	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			for _, chunk := range ParseChunks(buf[:n]) {
				full.WriteString(chunk.Text)
				if onChunk != nil {
					onChunk(chunk)
				}
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			metrics.RecordLLMStream("chat", "error", time.Since(start).Seconds())
			return "", fmt.Errorf("chat stream read failed: %w", err)
		}
	}

	metrics.RecordLLMStream("chat", "ok", time.Since(start).Seconds())
	return full.String(), nil
}
