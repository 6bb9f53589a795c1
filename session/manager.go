// Package session glues the transcript store and the context engine together
// for the live-interview and post-interview evaluation pipelines.
package session

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	interviewctx "github.com/prakashsanker/yeet-coder-sub002"
	"github.com/prakashsanker/yeet-coder-sub002/hooks"
	"github.com/prakashsanker/yeet-coder-sub002/store"
)

// Manager builds conversation contexts for stored interview sessions. It
// deduplicates concurrent builds per session: redundant summarization work
// for the same session is collapsed onto one in-flight build.
type Manager struct {
	store  store.TranscriptStore
	engine *interviewctx.Engine
	hooks  hooks.Hooks
	logger *slog.Logger
	group  singleflight.Group
}

// NewManager creates a Manager. Hooks and logger may be nil.
func NewManager(ts store.TranscriptStore, engine *interviewctx.Engine, h hooks.Hooks, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	if h == nil {
		h = hooks.Combine()
	}
	return &Manager{
		store:  ts,
		engine: engine,
		hooks:  h,
		logger: logger,
	}
}

// BuildContext loads the authoritative transcript for the session and builds
// a bounded conversation context from it. Concurrent calls for the same
// session share one build; each caller still receives the resulting value.
func (m *Manager) BuildContext(ctx context.Context, sessionID uuid.UUID) (*interviewctx.ConversationContext, error) {
	v, err, _ := m.group.Do(sessionID.String(), func() (any, error) {
		// The flight is shared by every concurrent caller, so it must not
		// inherit the first caller's cancellation: one cancel would degrade
		// the summary all waiters receive.
		return m.buildOnce(context.WithoutCancel(ctx), sessionID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*interviewctx.ConversationContext), nil
}

func (m *Manager) buildOnce(ctx context.Context, sessionID uuid.UUID) (*interviewctx.ConversationContext, error) {
	if err := m.hooks.BeforeBuild(ctx, sessionID); err != nil {
		m.logger.Warn("before-build hook failed", "session_id", sessionID, "error", err)
	}

	transcript, err := m.store.GetTranscript(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cc := m.engine.BuildConversationContext(ctx, transcript)

	if err := m.hooks.AfterBuild(ctx, sessionID, cc); err != nil {
		m.logger.Warn("after-build hook failed", "session_id", sessionID, "error", err)
	}
	return cc, nil
}

// NeedsCompaction reports whether the session transcript has reached the
// compaction threshold.
func (m *Manager) NeedsCompaction(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	transcript, err := m.store.GetTranscript(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return m.engine.NeedsCompaction(transcript), nil
}

// TokenStats computes budget-usage telemetry for the session transcript.
func (m *Manager) TokenStats(ctx context.Context, sessionID uuid.UUID) (interviewctx.TokenStats, error) {
	transcript, err := m.store.GetTranscript(ctx, sessionID)
	if err != nil {
		return interviewctx.TokenStats{}, err
	}
	return m.engine.TokenStats(transcript), nil
}
