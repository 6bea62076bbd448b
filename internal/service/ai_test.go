package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiragSahani/copilot-inbox/internal/seed"
)

func TestGenerateAIResponseMatchesKeyword(t *testing.T) {
	svc := newTestService()

	resp := svc.GenerateAIResponse(context.Background(), "How do I get a refund?", "")

	require.True(t, resp.Success)
	assert.Equal(t, seed.ResponseFor("How do I get a refund?"), resp.Data.Text)
	assert.Contains(t, resp.Data.Text, "refund")
}

func TestGenerateAIResponseDefaultReply(t *testing.T) {
	svc := newTestService()

	resp := svc.GenerateAIResponse(context.Background(), "something unrelated", "")

	require.True(t, resp.Success)
	assert.Equal(t, seed.ResponseFor("something unrelated"), resp.Data.Text)
}

func TestStreamAIResponseChunksReassemble(t *testing.T) {
	svc := newTestService()

	var chunks []string
	resp := svc.StreamAIResponse(context.Background(), "where is my shipping info", "", func(chunk string) {
		chunks = append(chunks, chunk)
	})

	require.True(t, resp.Success)
	require.NotEmpty(t, chunks)

	for _, chunk := range chunks {
		assert.True(t, strings.HasSuffix(chunk, " "))
	}

	joined := strings.Join(chunks, "")
	assert.Equal(t, resp.Data.Text, strings.TrimSpace(joined))

	want := seed.ResponseFor("where is my shipping info")
	assert.Equal(t, len(strings.Split(want, " ")), len(chunks))
}

func TestStreamAIResponseFailsBeforeAnyChunk(t *testing.T) {
	svc := newFailingService()

	delivered := 0
	resp := svc.StreamAIResponse(context.Background(), "refund", "", func(string) {
		delivered++
	})

	assert.False(t, resp.Success)
	assert.Equal(t, "Failed to stream AI response", resp.Error)
	assert.Zero(t, delivered)
}
