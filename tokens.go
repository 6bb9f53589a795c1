package interviewctx

import (
	"math"
	"strings"
)

// TokenEstimator approximates the token cost of a text string for the
// downstream model. Implementations must be pure: the same input always
// yields the same non-negative count.
//
// The estimator is an interface so a real tokenizer can later be substituted
// without touching the compaction algorithm.
type TokenEstimator interface {
	EstimateTokens(text string) int
}

// DefaultTokenMultiplier is the calibration constant applied to the word
// count, approximating subword and punctuation inflation for conversational
// English.
const DefaultTokenMultiplier = 1.3

// WordCountEstimator approximates token cost as ceil(words * Multiplier).
// No true tokenizer is available at this layer; a word-count heuristic is
// accepted by design.
type WordCountEstimator struct {
	Multiplier float64
}

// NewWordCountEstimator returns a WordCountEstimator using the default
// multiplier.
func NewWordCountEstimator() WordCountEstimator {
	return WordCountEstimator{Multiplier: DefaultTokenMultiplier}
}

// EstimateTokens splits text on whitespace, drops empty tokens, and returns
// ceil(words * Multiplier). Empty or all-whitespace input yields 0.
func (e WordCountEstimator) EstimateTokens(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	multiplier := e.Multiplier
	if multiplier <= 0 {
		multiplier = DefaultTokenMultiplier
	}
	return int(math.Ceil(float64(words) * multiplier))
}

// TranscriptTokens sums the estimated token cost of a transcript, using each
// entry's precomputed estimate when present and falling back to the
// estimator otherwise. Both the compaction policy and the stats reporter go
// through this function so their totals never disagree.
func TranscriptTokens(entries []TranscriptEntry, est TokenEstimator) int {
	total := 0
	for _, entry := range entries {
		total += entry.tokens(est)
	}
	return total
}
