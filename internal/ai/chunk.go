package ai

import (
	"encoding/json"
	"strings"
)

// ChunkKind tags how a stream chunk was interpreted.
type ChunkKind int

const (
	// ChunkParsed means the chunk carried well-formed text-delta events.
	ChunkParsed ChunkKind = iota
	// ChunkRaw means the chunk did not parse and its bytes were passed
	// through verbatim.
	ChunkRaw
)

// Chunk is one unit of streamed reply text.
type Chunk struct {
	Kind ChunkKind
	Text string
}

type streamEvent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ParseChunks decodes one network read of the chat stream wire format:
// newline-separated "data: {json}" lines carrying text-delta events,
// with "data: [DONE]" as the terminator. A read whose data lines do not
// decode is returned as a single raw chunk rather than dropped, so
// degraded upstream output still reaches the caller, visibly tagged.
func ParseChunks(data []byte) []Chunk {
	var chunks []Chunk

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		payload, ok := strings.CutPrefix(line, "data: ")
		if !ok {
			continue
		}
		if payload == "[DONE]" {
			continue
		}

		var event streamEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			return []Chunk{{Kind: ChunkRaw, Text: string(data)}}
		}
		if event.Type == "text-delta" && event.Text != "" {
			chunks = append(chunks, Chunk{Kind: ChunkParsed, Text: event.Text})
		}
	}

	return chunks
}
