package events

import (
	"context"

	"github.com/google/uuid"

	interviewctx "github.com/prakashsanker/yeet-coder-sub002"
)

// PublishingHooks adapts a Publisher to the hooks interface used by
// session.Manager, emitting one event per context build.
type PublishingHooks struct {
	publisher *Publisher
}

// NewPublishingHooks creates hooks that publish after every build.
func NewPublishingHooks(publisher *Publisher) *PublishingHooks {
	return &PublishingHooks{publisher: publisher}
}

// BeforeBuild is a no-op.
func (h *PublishingHooks) BeforeBuild(ctx context.Context, sessionID uuid.UUID) error {
	return nil
}

// AfterBuild publishes a ContextBuiltEvent.
func (h *PublishingHooks) AfterBuild(ctx context.Context, sessionID uuid.UUID, cc *interviewctx.ConversationContext) error {
	return h.publisher.PublishContextBuilt(sessionID, cc)
}
