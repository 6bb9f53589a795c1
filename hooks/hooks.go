// Package hooks provides observability callbacks around context builds.
package hooks

import (
	"context"

	"github.com/google/uuid"

	interviewctx "github.com/prakashsanker/yeet-coder-sub002"
)

// Hooks receives notifications around compaction-relevant events. All
// methods are best-effort: returned errors are logged by the caller, never
// allowed to fail an interview turn.
type Hooks interface {
	// BeforeBuild fires before a session context build starts.
	BeforeBuild(ctx context.Context, sessionID uuid.UUID) error

	// AfterBuild fires after a context is built, compacted or not.
	AfterBuild(ctx context.Context, sessionID uuid.UUID, cc *interviewctx.ConversationContext) error
}

// multiHooks fans out to several Hooks in order.
type multiHooks []Hooks

// Combine merges several Hooks into one. A nil or empty input yields a
// no-op Hooks.
func Combine(hooks ...Hooks) Hooks {
	return multiHooks(hooks)
}

func (m multiHooks) BeforeBuild(ctx context.Context, sessionID uuid.UUID) error {
	for _, h := range m {
		if err := h.BeforeBuild(ctx, sessionID); err != nil {
			return err
		}
	}
	return nil
}

func (m multiHooks) AfterBuild(ctx context.Context, sessionID uuid.UUID, cc *interviewctx.ConversationContext) error {
	for _, h := range m {
		if err := h.AfterBuild(ctx, sessionID, cc); err != nil {
			return err
		}
	}
	return nil
}
