package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chiragSahani/copilot-inbox/internal/model"
)

func TestBuildTranscript(t *testing.T) {
	messages := []model.Message{
		{Content: "Where is my order?", Sender: model.SenderCustomer},
		{Content: "Let me check that for you.", Sender: model.SenderAgent},
		{Content: "Order located.", Sender: model.SenderSystem},
	}

	got := BuildTranscript(messages)

	want := "Customer: Where is my order?\n\nAgent: Let me check that for you.\n\nAgent: Order located."
	assert.Equal(t, want, got)
}

func TestBuildTranscriptEmpty(t *testing.T) {
	assert.Empty(t, BuildTranscript(nil))
}

func TestBuildPrompt(t *testing.T) {
	got := BuildPrompt("Where is my refund?", "Customer: I want a refund")

	want := "The customer has asked: \"Where is my refund?\"\n\n" +
		"Based on the conversation history:\nCustomer: I want a refund\n\n" +
		"Provide a helpful response as a customer service representative."
	assert.Equal(t, want, got)
}
