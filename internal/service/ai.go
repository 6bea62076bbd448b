package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/chiragSahani/copilot-inbox/internal/model"
	"github.com/chiragSahani/copilot-inbox/internal/seed"
	"github.com/chiragSahani/copilot-inbox/internal/simulator"
)

// GenerateAIResponse returns the canned reply matching the query's
// keywords. Used when no LLM provider is configured; the conversation
// history is accepted for interface parity but does not influence the
// canned reply.
func (s *DataService) GenerateAIResponse(ctx context.Context, query, conversationHistory string) model.Response[*model.GeneratedText] {
	if err := s.sim.Delay(ctx, simulator.AI); err != nil {
		return model.Fail[*model.GeneratedText](http.StatusInternalServerError, "request cancelled")
	}

	if s.failInjected("generate_ai_response") {
		return model.Fail[*model.GeneratedText](http.StatusInternalServerError, "Failed to generate AI response")
	}

	return model.OK(http.StatusOK, &model.GeneratedText{
		Text: seed.ResponseFor(query),
	})
}

// StreamAIResponse delivers the canned reply word by word through
// onChunk, pacing each chunk with the simulator. The concatenation of
// all delivered chunks equals the returned text plus a trailing space.
func (s *DataService) StreamAIResponse(ctx context.Context, query, conversationHistory string, onChunk func(chunk string)) model.Response[*model.GeneratedText] {
	if s.failInjected("stream_ai_response") {
		return model.Fail[*model.GeneratedText](http.StatusInternalServerError, "Failed to stream AI response")
	}

	response := seed.ResponseFor(query)

	var full strings.Builder
	for _, word := range strings.Split(response, " ") {
		if err := s.sim.Delay(ctx, simulator.Chunk); err != nil {
			return model.Fail[*model.GeneratedText](http.StatusInternalServerError, "request cancelled")
		}

		chunk := word + " "
		full.WriteString(chunk)
		if onChunk != nil {
			onChunk(chunk)
		}
	}

	return model.OK(http.StatusOK, &model.GeneratedText{
		Text: strings.TrimSpace(full.String()),
	})
}
