package hooks

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	interviewctx "github.com/prakashsanker/yeet-coder-sub002"
)

// LoggingHooks logs context builds for observability.
type LoggingHooks struct {
	logger *slog.Logger
}

// NewLoggingHooks creates logging hooks with the provided logger. A nil
// logger selects slog.Default.
func NewLoggingHooks(logger *slog.Logger) *LoggingHooks {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingHooks{logger: logger}
}

// BeforeBuild logs the start of a context build.
func (h *LoggingHooks) BeforeBuild(ctx context.Context, sessionID uuid.UUID) error {
	h.logger.Debug("building conversation context", "session_id", sessionID)
	return nil
}

// AfterBuild logs the outcome of a context build.
func (h *LoggingHooks) AfterBuild(ctx context.Context, sessionID uuid.UUID, cc *interviewctx.ConversationContext) error {
	h.logger.Info("conversation context built",
		"session_id", sessionID,
		"state", cc.State,
		"total_tokens", cc.TotalTokens,
		"summary_tokens", cc.SummaryTokens,
		"recent_messages", len(cc.RecentMessages))
	return nil
}

// MetricsHooks funnels compaction counters to a user-supplied callback, for
// wiring into whatever metrics system the product runs.
type MetricsHooks struct {
	OnMetric func(name string, value float64, tags map[string]string)
}

// NewMetricsHooks creates metrics collection hooks.
func NewMetricsHooks(onMetric func(string, float64, map[string]string)) *MetricsHooks {
	return &MetricsHooks{OnMetric: onMetric}
}

// BeforeBuild is a no-op for metrics.
func (h *MetricsHooks) BeforeBuild(ctx context.Context, sessionID uuid.UUID) error {
	return nil
}

// AfterBuild records context build metrics.
func (h *MetricsHooks) AfterBuild(ctx context.Context, sessionID uuid.UUID, cc *interviewctx.ConversationContext) error {
	tags := map[string]string{"state": string(cc.State)}
	h.OnMetric("interview.context.total_tokens", float64(cc.TotalTokens), tags)
	h.OnMetric("interview.context.summary_tokens", float64(cc.SummaryTokens), tags)
	h.OnMetric("interview.context.recent_messages", float64(len(cc.RecentMessages)), tags)
	return nil
}
