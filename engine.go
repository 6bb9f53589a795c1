package interviewctx

import (
	"context"
	"log/slog"
)

// Engine implements the compaction policy: it bounds a transcript to the
// configured token budget, deciding what to keep verbatim and what to
// compress. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	config     *Config
	estimator  TokenEstimator
	summarizer *Summarizer
	logger     *slog.Logger
}

// New creates an Engine. A nil config selects DefaultConfig; a nil logger
// selects slog.Default. The generator is the external text-generation
// collaborator used for summarization.
func New(generator TextGenerator, config *Config, logger *slog.Logger) (*Engine, error) {
	if generator == nil {
		return nil, ErrNilGenerator
	}
	if config == nil {
		config = DefaultConfig()
	}
	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		config:     config,
		estimator:  config.Estimator,
		summarizer: NewSummarizer(generator, config, logger),
		logger:     logger,
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// BuildConversationContext bounds the transcript to the token budget and
// returns a fresh ConversationContext. It never fails: summarization
// problems degrade to the local fallback digest inside the Summarizer. The
// ctx bounds the single outbound generation call; callers should apply their
// own timeout around slow builds.
//
// Below the compaction threshold the whole transcript passes through
// verbatim. Above it, the last RecentKeep turns stay verbatim and everything
// older is summarized. A transcript over the threshold but too short to
// split passes through whole rather than losing content.
func (e *Engine) BuildConversationContext(ctx context.Context, transcript []TranscriptEntry) *ConversationContext {
	annotated := annotateTokens(transcript, e.estimator)
	total := TranscriptTokens(annotated, e.estimator)

	if total < e.config.CompactThreshold {
		return &ConversationContext{
			RecentMessages: annotated,
			RecentTokens:   total,
			TotalTokens:    total,
			State:          StateUncompacted,
		}
	}

	if len(annotated) <= e.config.RecentKeep {
		// Over threshold with nothing older to summarize, e.g. a few
		// very long turns. Pass through whole; the total may exceed
		// the soft threshold.
		e.logger.Warn("transcript over threshold but too short to compact",
			"total_tokens", total,
			"entries", len(annotated),
			"recent_keep", e.config.RecentKeep)
		return &ConversationContext{
			RecentMessages: annotated,
			RecentTokens:   total,
			TotalTokens:    total,
			State:          StateOverflowNoCompaction,
		}
	}

	older := annotated[:len(annotated)-e.config.RecentKeep]
	recent := annotated[len(annotated)-e.config.RecentKeep:]

	summary := e.summarizer.Summarize(ctx, older)
	summaryTokens := e.estimator.EstimateTokens(summary)
	recentTokens := TranscriptTokens(recent, e.estimator)

	e.logger.Debug("transcript compacted",
		"original_tokens", total,
		"summary_tokens", summaryTokens,
		"recent_tokens", recentTokens,
		"older_entries", len(older),
		"recent_entries", len(recent))

	return &ConversationContext{
		Summary:        summary,
		SummaryTokens:  summaryTokens,
		RecentMessages: recent,
		RecentTokens:   recentTokens,
		TotalTokens:    summaryTokens + recentTokens,
		State:          StateCompacted,
	}
}
