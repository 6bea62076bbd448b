// Package llm provides the text-generation client interface and its
// provider implementations.
package llm

import (
	"context"
)

// Default generation budget for agent-assist replies.
const (
	DefaultMaxTokens   = 500
	DefaultTemperature = 0.7
)

// StreamCallback is called for each token during streaming.
type StreamCallback func(token string, index int) error

// CompletionRequest is a text-generation request.
type CompletionRequest struct {
	Model       string
	System      string
	Messages    []ChatMessage
	MaxTokens   int
	Temperature float64
}

// ChatMessage is one turn of model input.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionResponse is a completed generation.
type CompletionResponse struct {
	Content    string
	Model      string
	TokensIn   int
	TokensOut  int
	StopReason string
	LatencyMs  int64
}

// Client is the interface over text-generation providers.
type Client interface {
	// Complete sends a completion request and returns the full response.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// CompleteStream streams tokens through callback and returns the
	// accumulated response.
	CompleteStream(ctx context.Context, req *CompletionRequest, callback StreamCallback) (*CompletionResponse, error)

	// Name returns the provider name.
	Name() string
}

// Provider identifies a text-generation provider.
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
)

// NewClient creates a client for the given provider.
func NewClient(provider Provider, apiKey string) (Client, error) {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAIClient(apiKey)
	default:
		return NewAnthropicClient(apiKey)
	}
}
