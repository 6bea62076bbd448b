// Package events publishes inbox activity to NATS when a server is
// configured, and drops it otherwise. Publishing is fire-and-forget:
// failures are logged and never surface in an operation's result.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/chiragSahani/copilot-inbox/internal/model"
)

// SubjectPrefix is the root of all inbox subjects.
const SubjectPrefix = "inbox"

// Publisher fans out inbox activity.
type Publisher interface {
	MessageAdded(ctx context.Context, conv *model.Conversation, msg *model.Message)
	ConversationCreated(ctx context.Context, conv *model.Conversation)
	Close()
}

// Noop discards all events.
type Noop struct{}

func (Noop) MessageAdded(context.Context, *model.Conversation, *model.Message) {}
func (Noop) ConversationCreated(context.Context, *model.Conversation)          {}
func (Noop) Close()                                                            {}

// Config holds NATS connection settings.
type Config struct {
	URL   string
	Token string
}

// NATSPublisher publishes events to core NATS subjects.
type NATSPublisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

// Connect establishes the NATS connection.
func Connect(cfg Config, log *zap.Logger) (*NATSPublisher, error) {
	opts := []nats.Option{
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn("NATS disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Info("NATS reconnected")
		}),
	}
	if cfg.Token != "" {
		opts = append(opts, nats.Token(cfg.Token))
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSPublisher{conn: nc, logger: log}, nil
}

// IsConnected reports whether the connection is currently up.
func (p *NATSPublisher) IsConnected() bool {
	return p.conn != nil && p.conn.IsConnected()
}

func (p *NATSPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}

type messageAddedEvent struct {
	ConversationID string         `json:"conversation_id"`
	Category       model.Category `json:"category"`
	Message        *model.Message `json:"message"`
}

type conversationCreatedEvent struct {
	Conversation *model.Conversation `json:"conversation"`
}

func (p *NATSPublisher) MessageAdded(_ context.Context, conv *model.Conversation, msg *model.Message) {
	subject := fmt.Sprintf("%s.%s.%s.msg.%s", SubjectPrefix, conv.Category, conv.ID, msg.Sender)
	p.publish(subject, messageAddedEvent{
		ConversationID: conv.ID,
		Category:       conv.Category,
		Message:        msg,
	})
}

func (p *NATSPublisher) ConversationCreated(_ context.Context, conv *model.Conversation) {
	subject := fmt.Sprintf("%s.%s.%s.created", SubjectPrefix, conv.Category, conv.ID)
	p.publish(subject, conversationCreatedEvent{Conversation: conv})
}

func (p *NATSPublisher) publish(subject string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("failed to encode event", zap.String("subject", subject), zap.Error(err))
		return
	}
	if err := p.conn.Publish(subject, data); err != nil {
		p.logger.Warn("failed to publish event", zap.String("subject", subject), zap.Error(err))
	}
}
