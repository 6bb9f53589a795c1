package interviewctx

import "fmt"

// Default configuration values.
const (
	// DefaultMaxBudget is the hard token ceiling the downstream model
	// context must fit under, after headroom is reserved elsewhere for
	// instructions, problem context, and generation.
	DefaultMaxBudget = 8000

	// DefaultCompactThreshold is the soft line (75% of the budget) at
	// which compaction engages.
	DefaultCompactThreshold = 6000

	// DefaultRecentKeep is the number of trailing turns always preserved
	// verbatim. The interviewer persona needs them byte for byte to hold
	// a coherent immediate follow-up.
	DefaultRecentKeep = 8

	DefaultSummarizerModel       = "claude-3-5-haiku-20241022"
	DefaultSummarizerMaxTokens   = 500
	DefaultSummarizerTemperature = 0.3

	// DefaultFallbackEntries and DefaultFallbackTruncateAt shape the
	// deterministic local digest used when the generation call fails.
	DefaultFallbackEntries    = 5
	DefaultFallbackTruncateAt = 100
)

// Config holds the context engine configuration. The budget values are fixed
// named configuration, not runtime-mutable state; they are fields so tests
// can exercise the policy at alternate values.
type Config struct {
	// MaxBudget is the hard token ceiling for the rendered context.
	// Default: 8000
	MaxBudget int

	// CompactThreshold is the token total at which compaction engages.
	// Must be below MaxBudget.
	// Default: 6000
	CompactThreshold int

	// RecentKeep is the number of trailing transcript turns always kept
	// verbatim, never summarized.
	// Default: 8
	RecentKeep int

	// SummarizerModel is the generation model used for summarization.
	// Default: "claude-3-5-haiku-20241022"
	SummarizerModel string

	// SummarizerMaxTokens caps the generated summary length.
	// Default: 500
	SummarizerMaxTokens int

	// SummarizerTemperature biases the summarizer toward deterministic
	// output. Nil selects the default; an explicit 0 is honored.
	// Default: 0.3
	SummarizerTemperature *float64

	// FallbackEntries is how many trailing older turns the local fallback
	// digest covers.
	// Default: 5
	FallbackEntries int

	// FallbackTruncateAt is the per-turn character cap in the fallback
	// digest.
	// Default: 100
	FallbackTruncateAt int

	// Estimator approximates token cost. Nil selects the word-count
	// heuristic.
	Estimator TokenEstimator
}

// DefaultConfig returns a Config with the production defaults.
func DefaultConfig() *Config {
	temperature := DefaultSummarizerTemperature
	return &Config{
		MaxBudget:             DefaultMaxBudget,
		CompactThreshold:      DefaultCompactThreshold,
		RecentKeep:            DefaultRecentKeep,
		SummarizerModel:       DefaultSummarizerModel,
		SummarizerMaxTokens:   DefaultSummarizerMaxTokens,
		SummarizerTemperature: &temperature,
		FallbackEntries:       DefaultFallbackEntries,
		FallbackTruncateAt:    DefaultFallbackTruncateAt,
		Estimator:             NewWordCountEstimator(),
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	if c.MaxBudget == 0 {
		c.MaxBudget = DefaultMaxBudget
	}
	if c.CompactThreshold == 0 {
		c.CompactThreshold = DefaultCompactThreshold
	}
	if c.RecentKeep == 0 {
		c.RecentKeep = DefaultRecentKeep
	}
	if c.SummarizerModel == "" {
		c.SummarizerModel = DefaultSummarizerModel
	}
	if c.SummarizerMaxTokens == 0 {
		c.SummarizerMaxTokens = DefaultSummarizerMaxTokens
	}
	if c.SummarizerTemperature == nil {
		temperature := DefaultSummarizerTemperature
		c.SummarizerTemperature = &temperature
	}
	if c.FallbackEntries == 0 {
		c.FallbackEntries = DefaultFallbackEntries
	}
	if c.FallbackTruncateAt == 0 {
		c.FallbackTruncateAt = DefaultFallbackTruncateAt
	}
	if c.Estimator == nil {
		c.Estimator = NewWordCountEstimator()
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.MaxBudget <= 0 {
		return fmt.Errorf("%w: max_budget must be positive, got %d", ErrInvalidConfig, c.MaxBudget)
	}
	if c.CompactThreshold <= 0 {
		return fmt.Errorf("%w: compact_threshold must be positive, got %d", ErrInvalidConfig, c.CompactThreshold)
	}
	if c.CompactThreshold >= c.MaxBudget {
		return fmt.Errorf("%w: compact_threshold (%d) must be less than max_budget (%d)",
			ErrInvalidConfig, c.CompactThreshold, c.MaxBudget)
	}
	if c.RecentKeep <= 0 {
		return fmt.Errorf("%w: recent_keep must be positive, got %d", ErrInvalidConfig, c.RecentKeep)
	}
	if c.SummarizerModel == "" {
		return fmt.Errorf("%w: summarizer_model is required", ErrInvalidConfig)
	}
	if c.SummarizerMaxTokens <= 0 {
		return fmt.Errorf("%w: summarizer_max_tokens must be positive, got %d", ErrInvalidConfig, c.SummarizerMaxTokens)
	}
	if c.SummarizerTemperature == nil {
		return fmt.Errorf("%w: summarizer_temperature is required", ErrInvalidConfig)
	}
	if *c.SummarizerTemperature < 0 || *c.SummarizerTemperature > 1 {
		return fmt.Errorf("%w: summarizer_temperature must be between 0 and 1, got %f", ErrInvalidConfig, *c.SummarizerTemperature)
	}
	if c.FallbackEntries <= 0 {
		return fmt.Errorf("%w: fallback_entries must be positive, got %d", ErrInvalidConfig, c.FallbackEntries)
	}
	if c.FallbackTruncateAt <= 0 {
		return fmt.Errorf("%w: fallback_truncate_at must be positive, got %d", ErrInvalidConfig, c.FallbackTruncateAt)
	}
	return nil
}
