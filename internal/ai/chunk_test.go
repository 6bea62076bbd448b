package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChunksWellFormed(t *testing.T) {
	data := []byte("data: {\"type\":\"text-delta\",\"text\":\"Hello \"}\n" +
		"data: {\"type\":\"text-delta\",\"text\":\"world\"}\n")

	chunks := ParseChunks(data)

	require.Len(t, chunks, 2)
	assert.Equal(t, ChunkParsed, chunks[0].Kind)
	assert.Equal(t, "Hello ", chunks[0].Text)
	assert.Equal(t, "world", chunks[1].Text)
}

func TestParseChunksSkipsDone(t *testing.T) {
	data := []byte("data: {\"type\":\"text-delta\",\"text\":\"end\"}\n\ndata: [DONE]\n\n")

	chunks := ParseChunks(data)

	require.Len(t, chunks, 1)
	assert.Equal(t, "end", chunks[0].Text)
}

func TestParseChunksIgnoresOtherEventTypes(t *testing.T) {
	data := []byte("data: {\"type\":\"ping\"}\ndata: {\"type\":\"text-delta\",\"text\":\"x\"}\n")

	chunks := ParseChunks(data)

	require.Len(t, chunks, 1)
	assert.Equal(t, "x", chunks[0].Text)
}

func TestParseChunksMalformedFallsBackToRaw(t *testing.T) {
	data := []byte("data: {not json at all\n")

	chunks := ParseChunks(data)

	require.Len(t, chunks, 1)
	assert.Equal(t, ChunkRaw, chunks[0].Kind)
	assert.Equal(t, string(data), chunks[0].Text)
}

func TestParseChunksEmptyInput(t *testing.T) {
	assert.Empty(t, ParseChunks(nil))
	assert.Empty(t, ParseChunks([]byte("\n\n")))
	assert.Empty(t, ParseChunks([]byte("event: noise\n")))
}
