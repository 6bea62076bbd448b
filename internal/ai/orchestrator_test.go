package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chiragSahani/copilot-inbox/internal/llm"
)

type stubLLM struct {
	content string
	err     error

	lastReq *llm.CompletionRequest
}

func (s *stubLLM) Complete(_ context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &llm.CompletionResponse{Content: s.content}, nil
}

func (s *stubLLM) CompleteStream(ctx context.Context, req *llm.CompletionRequest, callback llm.StreamCallback) (*llm.CompletionResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i, word := range strings.Fields(s.content) {
		if err := callback(word+" ", i); err != nil {
			return nil, err
		}
	}
	return &llm.CompletionResponse{Content: s.content}, nil
}

func (s *stubLLM) Name() string { return "stub" }

func TestGenerateReplyUsesPersona(t *testing.T) {
	stub := &stubLLM{content: "Happy to help with that."}
	o := NewOrchestrator(stub, "", zap.NewNop())

	got := o.GenerateReply(context.Background(), "Where is my order?", "Customer: hello")

	assert.Equal(t, "Happy to help with that.", got)
	require.NotNil(t, stub.lastReq)
	assert.Equal(t, Persona, stub.lastReq.System)
	require.Len(t, stub.lastReq.Messages, 1)
	assert.Contains(t, stub.lastReq.Messages[0].Content, "Where is my order?")
}

func TestGenerateReplyFallsBackToApology(t *testing.T) {
	stub := &stubLLM{err: errors.New("provider down")}
	o := NewOrchestrator(stub, "", zap.NewNop())

	got := o.GenerateReply(context.Background(), "anything", "")

	assert.Equal(t, Apology, got)
}

func TestGenerateReplyWithoutClient(t *testing.T) {
	o := NewOrchestrator(nil, "", zap.NewNop())

	assert.Equal(t, Apology, o.GenerateReply(context.Background(), "anything", ""))
}

func TestStreamReplyAccumulatesChunks(t *testing.T) {
	words := []string{"Our ", "return ", "policy ", "allows ", "60 days."}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "returns?", req["query"])

		w.Header().Set("Content-Type", "text/event-stream")
		for _, word := range words {
			payload, _ := json.Marshal(map[string]string{"type": "text-delta", "text": word})
			fmt.Fprintf(w, "data: %s\n\n", payload)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	o := NewOrchestrator(nil, srv.URL, zap.NewNop())

	var received []Chunk
	got, err := o.StreamReply(context.Background(), "returns?", "", func(c Chunk) {
		received = append(received, c)
	})

	require.NoError(t, err)
	assert.Equal(t, strings.Join(words, ""), got)

	var joined strings.Builder
	for _, c := range received {
		assert.Equal(t, ChunkParsed, c.Kind)
		joined.WriteString(c.Text)
	}
	assert.Equal(t, got, joined.String())
}

func TestStreamReplyFailsFastOnHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	o := NewOrchestrator(nil, srv.URL, zap.NewNop())

	delivered := 0
	_, err := o.StreamReply(context.Background(), "q", "", func(Chunk) {
		delivered++
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Zero(t, delivered)
}

func TestStreamReplyUnreachableEndpoint(t *testing.T) {
	o := NewOrchestrator(nil, "http://127.0.0.1:1/chat", zap.NewNop())

	_, err := o.StreamReply(context.Background(), "q", "", nil)
	require.Error(t, err)
}
