package interviewctx

import "math"

// TokenStats is the budget-usage telemetry exposed to callers. It feeds
// monitoring and backpressure decisions outside this subsystem, such as
// warning the candidate or forcing interview wrap-up.
type TokenStats struct {
	TotalTokens     int  `json:"total_tokens"`
	MessageCount    int  `json:"message_count"`
	NeedsCompaction bool `json:"needs_compaction"`

	// PercentUsed is TotalTokens over MaxBudget, rounded to the nearest
	// whole percent.
	PercentUsed int `json:"percent_used"`
}

// NeedsCompaction reports whether the transcript's estimated total has
// reached the compaction threshold.
func (e *Engine) NeedsCompaction(transcript []TranscriptEntry) bool {
	return TranscriptTokens(transcript, e.estimator) >= e.config.CompactThreshold
}

// TokenStats computes budget-usage telemetry for the transcript. Pure and
// side-effect free; it never invokes the summarizer.
func (e *Engine) TokenStats(transcript []TranscriptEntry) TokenStats {
	total := TranscriptTokens(transcript, e.estimator)
	return TokenStats{
		TotalTokens:     total,
		MessageCount:    len(transcript),
		NeedsCompaction: total >= e.config.CompactThreshold,
		PercentUsed:     int(math.Round(float64(total) / float64(e.config.MaxBudget) * 100)),
	}
}
