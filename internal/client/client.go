// Package client is the API façade the rest of the application talks to.
// It holds the bearer token, persists it across restarts, and forwards
// every call unchanged to the data service. No batching, no caching, no
// retries.
package client

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/chiragSahani/copilot-inbox/internal/model"
	"github.com/chiragSahani/copilot-inbox/internal/service"
)

// Client fronts the data service.
type Client struct {
	svc    *service.DataService
	tokens TokenStore
	logger *zap.Logger

	mu    sync.RWMutex
	token string
}

// New creates a façade over svc. tokens may be nil to disable
// persistence.
func New(svc *service.DataService, tokens TokenStore, log *zap.Logger) *Client {
	if tokens == nil {
		tokens = &MemoryTokenStore{}
	}
	return &Client{
		svc:    svc,
		tokens: tokens,
		logger: log,
	}
}

// Initialize restores a persisted token, if any. A load error is logged
// and the client continues unauthenticated.
func (c *Client) Initialize() {
	token, err := c.tokens.Load()
	if err != nil {
		c.logger.Warn("failed to restore auth token", zap.Error(err))
		return
	}
	if token != "" {
		c.mu.Lock()
		c.token = token
		c.mu.Unlock()
	}
}

// Token returns the current bearer token, or "" when unauthenticated.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Login authenticates and, on success, stores the minted token.
func (c *Client) Login(ctx context.Context, email, password string) model.Response[*model.LoginResult] {
	resp := c.svc.Login(ctx, email, password)

	if resp.Success && resp.Data != nil {
		c.mu.Lock()
		c.token = resp.Data.Token
		c.mu.Unlock()
		if err := c.tokens.Save(resp.Data.Token); err != nil {
			c.logger.Warn("failed to persist auth token", zap.Error(err))
		}
	}

	return resp
}

// Logout clears the token on success.
func (c *Client) Logout(ctx context.Context) model.Response[*struct{}] {
	resp := c.svc.Logout(ctx)

	if resp.Success {
		c.mu.Lock()
		c.token = ""
		c.mu.Unlock()
		if err := c.tokens.Clear(); err != nil {
			c.logger.Warn("failed to clear auth token", zap.Error(err))
		}
	}

	return resp
}

func (c *Client) CurrentUser(ctx context.Context) model.Response[*model.User] {
	return c.svc.CurrentUser(ctx)
}

func (c *Client) ListConversations(ctx context.Context, p model.ListConversationsParams) model.Response[*model.ConversationPage] {
	return c.svc.ListConversations(ctx, p)
}

func (c *Client) GetConversation(ctx context.Context, id string) model.Response[*model.Conversation] {
	return c.svc.GetConversation(ctx, id)
}

func (c *Client) AddMessage(ctx context.Context, conversationID string, in model.MessageInput) model.Response[*model.Message] {
	return c.svc.AddMessage(ctx, conversationID, in)
}

func (c *Client) CreateConversation(ctx context.Context, req model.CreateConversationRequest) model.Response[*model.Conversation] {
	return c.svc.CreateConversation(ctx, req)
}

func (c *Client) GetKnowledgeSources(ctx context.Context, p model.KnowledgeParams) model.Response[[]model.KnowledgeSource] {
	return c.svc.GetKnowledgeSources(ctx, p)
}

func (c *Client) GetRelevantKnowledgeSources(ctx context.Context, query string) model.Response[[]model.KnowledgeSource] {
	return c.svc.GetRelevantKnowledgeSources(ctx, query)
}

func (c *Client) GenerateAIResponse(ctx context.Context, query, conversationHistory string) model.Response[*model.GeneratedText] {
	return c.svc.GenerateAIResponse(ctx, query, conversationHistory)
}

func (c *Client) StreamAIResponse(ctx context.Context, query, conversationHistory string, onChunk func(string)) model.Response[*model.GeneratedText] {
	return c.svc.StreamAIResponse(ctx, query, conversationHistory, onChunk)
}

func (c *Client) GetUsers(ctx context.Context) model.Response[[]model.User] {
	return c.svc.GetUsers(ctx)
}

func (c *Client) GetTeams(ctx context.Context) model.Response[[]model.Team] {
	return c.svc.GetTeams(ctx)
}

func (c *Client) GetNotifications(ctx context.Context) model.Response[[]model.Notification] {
	return c.svc.GetNotifications(ctx)
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) model.Response[*model.Notification] {
	return c.svc.MarkNotificationRead(ctx, id)
}

func (c *Client) GetAnalyticsData(ctx context.Context) model.Response[*model.AnalyticsData] {
	return c.svc.GetAnalyticsData(ctx)
}
