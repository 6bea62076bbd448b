package state

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/chiragSahani/copilot-inbox/internal/client"
	"github.com/chiragSahani/copilot-inbox/internal/model"
	"github.com/chiragSahani/copilot-inbox/internal/seed"
)

// ConversationStore is the client-visible cache of conversations, the
// current-conversation pointer, and the knowledge sources. The store and
// the backend never share mutable references: every update replaces whole
// entries.
type ConversationStore struct {
	api      *client.Client
	notifier *Notifier
	logger   *zap.Logger

	mu            sync.RWMutex
	conversations []model.Conversation
	current       *model.Conversation
	knowledge     []model.KnowledgeSource
	loading       bool
	lastError     string
}

// NewConversationStore creates an empty store over the API façade.
func NewConversationStore(api *client.Client, notifier *Notifier, log *zap.Logger) *ConversationStore {
	return &ConversationStore{
		api:      api,
		notifier: notifier,
		logger:   log,
	}
}

// Load performs the initial fetch of conversations and knowledge
// sources. A failed conversation load substitutes the deterministic
// sample data so the caller is never left without data.
func (s *ConversationStore) Load(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	s.Refresh(ctx)
	s.loadKnowledgeSources(ctx)
}

// Refresh reloads the conversation list. If the previously selected
// conversation still exists in the new list the selection is re-pointed
// at the refreshed object; otherwise it defaults to the list's head.
func (s *ConversationStore) Refresh(ctx context.Context) {
	resp := s.api.ListConversations(ctx, model.ListConversationsParams{})

	if !resp.Success || resp.Data == nil {
		s.logger.Warn("failed to refresh conversations", zap.String("error", resp.Error))
		s.applyConversations(seed.Conversations())
		s.notifier.Add(Notification{
			Type:    NoticeWarning,
			Title:   "Warning",
			Message: "Using sample data due to API connection issue",
		})
		return
	}

	s.applyConversations(resp.Data.Conversations)
}

func (s *ConversationStore) applyConversations(conversations []model.Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversations = conversations

	if s.current != nil {
		for i := range conversations {
			if conversations[i].ID == s.current.ID {
				conv := conversations[i]
				s.current = &conv
				return
			}
		}
	}

	if len(conversations) > 0 {
		conv := conversations[0]
		s.current = &conv
	} else {
		s.current = nil
	}
}

// Search re-queries with filters, replacing the list. The current
// selection is left untouched.
func (s *ConversationStore) Search(ctx context.Context, query, category string) {
	s.setLoading(true)
	defer s.setLoading(false)

	resp := s.api.ListConversations(ctx, model.ListConversationsParams{
		Search:   query,
		Category: category,
	})

	if !resp.Success || resp.Data == nil {
		s.logger.Warn("failed to search conversations", zap.String("error", resp.Error))
		s.setError("Failed to search conversations. Please try again.")
		return
	}

	s.mu.Lock()
	s.conversations = resp.Data.Conversations
	s.lastError = ""
	s.mu.Unlock()
}

// AddMessage appends a message to the current conversation. On success
// both the current pointer and the matching list entry are replaced with
// the same updated object, so the two copies never diverge. A no-op when
// nothing is selected.
func (s *ConversationStore) AddMessage(ctx context.Context, in model.MessageInput) {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()

	if current == nil {
		return
	}

	resp := s.api.AddMessage(ctx, current.ID, in)

	if !resp.Success || resp.Data == nil {
		s.logger.Warn("failed to add message", zap.String("error", resp.Error))
		s.notifier.Add(Notification{
			Type:    NoticeError,
			Title:   "Error",
			Message: "Failed to send message. Please try again.",
		})
		return
	}

	msg := *resp.Data

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.ID != current.ID {
		return
	}

	updated := *s.current
	updated.Messages = append(append([]model.Message{}, s.current.Messages...), msg)
	updated.LastMessage = msg.Content
	updated.UpdatedAt = msg.Timestamp

	s.current = &updated
	for i := range s.conversations {
		if s.conversations[i].ID == updated.ID {
			s.conversations[i] = updated
			break
		}
	}
}

// Create opens a new conversation. On success it is prepended to the
// list and made current. Returns whether the creation succeeded.
func (s *ConversationStore) Create(ctx context.Context, req model.CreateConversationRequest) bool {
	s.setLoading(true)
	defer s.setLoading(false)

	resp := s.api.CreateConversation(ctx, req)

	if !resp.Success || resp.Data == nil {
		s.logger.Warn("failed to create conversation", zap.String("error", resp.Error))
		s.notifier.Add(Notification{
			Type:    NoticeError,
			Title:   "Error",
			Message: "Failed to create conversation. Please try again.",
		})
		return false
	}

	conv := *resp.Data

	s.mu.Lock()
	s.conversations = append([]model.Conversation{conv}, s.conversations...)
	s.current = &conv
	s.mu.Unlock()

	s.notifier.Add(Notification{
		Type:    NoticeSuccess,
		Title:   "Success",
		Message: "New conversation created successfully.",
	})

	return true
}

func (s *ConversationStore) loadKnowledgeSources(ctx context.Context) {
	resp := s.api.GetKnowledgeSources(ctx, model.KnowledgeParams{})

	if !resp.Success {
		s.logger.Warn("failed to load knowledge sources", zap.String("error", resp.Error))
		return
	}

	s.mu.Lock()
	s.knowledge = resp.Data
	s.mu.Unlock()
}

// SetCurrent selects a conversation by id. Unknown ids are ignored.
func (s *ConversationStore) SetCurrent(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.conversations {
		if s.conversations[i].ID == id {
			conv := s.conversations[i]
			s.current = &conv
			return
		}
	}
}

// Current returns a copy of the selected conversation.
func (s *ConversationStore) Current() (model.Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return model.Conversation{}, false
	}
	return *s.current, true
}

// Conversations returns a snapshot of the cached list.
func (s *ConversationStore) Conversations() []model.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Conversation, len(s.conversations))
	copy(out, s.conversations)
	return out
}

// KnowledgeSources returns a snapshot of the cached knowledge base.
func (s *ConversationStore) KnowledgeSources() []model.KnowledgeSource {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.KnowledgeSource, len(s.knowledge))
	copy(out, s.knowledge)
	return out
}

// Loading reports whether a load or search is in flight.
func (s *ConversationStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last search error, or "".
func (s *ConversationStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

func (s *ConversationStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *ConversationStore) setError(msg string) {
	s.mu.Lock()
	s.lastError = msg
	s.mu.Unlock()
}
