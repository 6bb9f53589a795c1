// Package events publishes context compaction telemetry to NATS so other
// parts of the interview platform can react to budget pressure.
package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	interviewctx "github.com/prakashsanker/yeet-coder-sub002"
)

// SubjectContextBuilt is the NATS subject for context build events.
const SubjectContextBuilt = "interview.context.built"

// ContextBuiltEvent is emitted after every context build, compacted or not.
type ContextBuiltEvent struct {
	SessionID      uuid.UUID                    `json:"session_id"`
	State          interviewctx.CompactionState `json:"state"`
	TotalTokens    int                          `json:"total_tokens"`
	SummaryTokens  int                          `json:"summary_tokens"`
	RecentTokens   int                          `json:"recent_tokens"`
	RecentMessages int                          `json:"recent_messages"`
	Timestamp      time.Time                    `json:"timestamp"`
}

// Publisher publishes context events to NATS.
type Publisher struct {
	conn   *nats.Conn
	logger *slog.Logger
}

// Connect dials NATS with reconnect handling and returns a Publisher.
func Connect(url string, logger *slog.Logger) (*Publisher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Publisher{conn: conn, logger: logger}, nil
}

// NewPublisher wraps an existing NATS connection.
func NewPublisher(conn *nats.Conn, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{conn: conn, logger: logger}
}

// PublishContextBuilt emits a ContextBuiltEvent for the session.
func (p *Publisher) PublishContextBuilt(sessionID uuid.UUID, cc *interviewctx.ConversationContext) error {
	event := ContextBuiltEvent{
		SessionID:      sessionID,
		State:          cc.State,
		TotalTokens:    cc.TotalTokens,
		SummaryTokens:  cc.SummaryTokens,
		RecentTokens:   cc.RecentTokens,
		RecentMessages: len(cc.RecentMessages),
		Timestamp:      time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return p.conn.Publish(SubjectContextBuilt, payload)
}

// Close drains the connection.
func (p *Publisher) Close() {
	p.conn.Close()
}
