// Package ai orchestrates agent-assist reply generation: prompt
// assembly, the batch path through a provider client, and the streaming
// path over the chat endpoint's wire format.
package ai

import (
	"fmt"
	"strings"

	"github.com/chiragSahani/copilot-inbox/internal/model"
)

// Persona is the system prompt for agent-assist replies.
const Persona = "You are Fin, a helpful customer service AI assistant. Your goal is to assist customers with their inquiries in a friendly and professional manner. Provide detailed and accurate information based on the company's policies and knowledge base. Be concise but thorough in your responses."

// Apology is returned when generation fails.
const Apology = "I apologize, but I'm having trouble generating a response right now. Please try again later or contact our support team directly for immediate assistance."

// BuildTranscript renders messages as a plain-text exchange, one
// speaker-prefixed line per message separated by blank lines. Customer
// messages are labeled Customer, everything else Agent.
func BuildTranscript(messages []model.Message) string {
	lines := make([]string, len(messages))
	for i, msg := range messages {
		speaker := "Agent"
		if msg.Sender == model.SenderCustomer {
			speaker = "Customer"
		}
		lines[i] = fmt.Sprintf("%s: %s", speaker, msg.Content)
	}
	return strings.Join(lines, "\n\n")
}

// BuildPrompt combines the customer's query and the conversation
// transcript into the generation prompt.
func BuildPrompt(query, conversationHistory string) string {
	return fmt.Sprintf("The customer has asked: \"%s\"\n\nBased on the conversation history:\n%s\n\nProvide a helpful response as a customer service representative.",
		query, conversationHistory)
}
