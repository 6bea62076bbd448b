package service

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chiragSahani/copilot-inbox/internal/model"
	"github.com/chiragSahani/copilot-inbox/internal/simulator"
	"github.com/chiragSahani/copilot-inbox/pkg/metrics"
)

// ListConversations applies, in order: search filter, category filter,
// sort, pagination. Failure injection is skipped when no explicit page is
// requested, so the initial load always succeeds.
func (s *DataService) ListConversations(ctx context.Context, p model.ListConversationsParams) model.Response[*model.ConversationPage] {
	if err := s.sim.Delay(ctx, simulator.Default); err != nil {
		return model.Fail[*model.ConversationPage](http.StatusInternalServerError, "request cancelled")
	}

	if p.Page > 0 && s.failInjected("list_conversations") {
		return model.Fail[*model.ConversationPage](http.StatusInternalServerError, "Failed to fetch conversations")
	}

	page := p.Page
	if page < 1 {
		page = 1
	}
	limit := p.Limit
	if limit < 1 {
		limit = 10
	}

	s.mu.RLock()
	filtered := make([]model.Conversation, 0, len(s.conversations))
	filtered = append(filtered, s.conversations...)
	s.mu.RUnlock()

	if p.Search != "" {
		needle := strings.ToLower(p.Search)
		kept := filtered[:0]
		for _, conv := range filtered {
			if strings.Contains(strings.ToLower(conv.Customer.Name), needle) ||
				strings.Contains(strings.ToLower(conv.Customer.Email), needle) ||
				strings.Contains(strings.ToLower(conv.LastMessage), needle) {
				kept = append(kept, conv)
			}
		}
		filtered = kept
	}

	if p.Category != "" && p.Category != "all" {
		kept := filtered[:0]
		for _, conv := range filtered {
			if string(conv.Category) == p.Category {
				kept = append(kept, conv)
			}
		}
		filtered = kept
	}

	if p.Sort != "" {
		field, direction, _ := strings.Cut(p.Sort, ":")
		asc := direction != "desc"

		sort.SliceStable(filtered, func(i, j int) bool {
			switch field {
			case "date":
				if asc {
					return filtered[i].UpdatedAt.Before(filtered[j].UpdatedAt)
				}
				return filtered[j].UpdatedAt.Before(filtered[i].UpdatedAt)
			case "name":
				if asc {
					return filtered[i].Customer.Name < filtered[j].Customer.Name
				}
				return filtered[j].Customer.Name < filtered[i].Customer.Name
			}
			return false
		})
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	out := make([]model.Conversation, 0, end-start)
	for _, conv := range filtered[start:end] {
		out = append(out, cloneConversation(conv))
	}

	return model.OK(http.StatusOK, &model.ConversationPage{
		Conversations: out,
		Total:         total,
		Page:          page,
		TotalPages:    totalPages,
	})
}

// GetConversation looks up a conversation by exact id.
func (s *DataService) GetConversation(ctx context.Context, id string) model.Response[*model.Conversation] {
	if err := s.sim.Delay(ctx, simulator.Default); err != nil {
		return model.Fail[*model.Conversation](http.StatusInternalServerError, "request cancelled")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.findConversation(id)
	if idx < 0 || s.failInjected("get_conversation") {
		return model.Fail[*model.Conversation](http.StatusNotFound, "Conversation not found")
	}

	conv := cloneConversation(s.conversations[idx])
	return model.OK(http.StatusOK, &conv)
}

// AddMessage appends a message to a conversation and keeps last_message
// and updated_at in sync with it. The mutation is atomic: no partial
// update is ever visible.
func (s *DataService) AddMessage(ctx context.Context, conversationID string, in model.MessageInput) model.Response[*model.Message] {
	if err := s.sim.Delay(ctx, simulator.Default); err != nil {
		return model.Fail[*model.Message](http.StatusInternalServerError, "request cancelled")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findConversation(conversationID)
	if idx < 0 || s.failInjected("add_message") {
		return model.Fail[*model.Message](http.StatusNotFound, "Conversation not found")
	}

	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	msg := model.Message{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Content:     in.Content,
		Sender:      in.Sender,
		Timestamp:   ts,
		Attachments: in.Attachments,
	}

	conv := &s.conversations[idx]
	conv.Messages = append(conv.Messages, msg)
	conv.LastMessage = msg.Content
	conv.UpdatedAt = msg.Timestamp

	metrics.MessagesTotal.WithLabelValues(string(conv.Category), string(msg.Sender)).Inc()

	published := cloneConversation(*conv)
	s.events.MessageAdded(ctx, &published, &msg)

	return model.OK(http.StatusCreated, &msg)
}

// CreateConversation opens a new thread with an initial customer-authored
// message and prepends it, preserving newest-first ordering.
func (s *DataService) CreateConversation(ctx context.Context, req model.CreateConversationRequest) model.Response[*model.Conversation] {
	if err := s.sim.Delay(ctx, simulator.Default); err != nil {
		return model.Fail[*model.Conversation](http.StatusInternalServerError, "request cancelled")
	}

	if s.failInjected("create_conversation") {
		return model.Fail[*model.Conversation](http.StatusInternalServerError, "Failed to create conversation")
	}

	now := time.Now()
	conv := model.Conversation{
		ID:       uuid.Must(uuid.NewV7()).String(),
		Customer: req.Customer,
		Messages: []model.Message{
			{
				ID:        uuid.Must(uuid.NewV7()).String(),
				Content:   req.Message,
				Sender:    model.SenderCustomer,
				Timestamp: now,
			},
		},
		LastMessage: req.Message,
		UpdatedAt:   now,
		Category:    req.Category,
		Unread:      1,
	}

	s.mu.Lock()
	s.conversations = append([]model.Conversation{conv}, s.conversations...)
	s.mu.Unlock()

	s.logger.Info("conversation created",
		zap.String("conversation_id", conv.ID),
		zap.String("category", string(conv.Category)),
	)
	metrics.ConversationsTotal.WithLabelValues(string(conv.Category)).Inc()

	published := cloneConversation(conv)
	s.events.ConversationCreated(ctx, &published)

	out := cloneConversation(conv)
	return model.OK(http.StatusCreated, &out)
}

// findConversation returns the index of id, or -1. Callers hold mu.
func (s *DataService) findConversation(id string) int {
	for i := range s.conversations {
		if s.conversations[i].ID == id {
			return i
		}
	}
	return -1
}
