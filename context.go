package interviewctx

// CompactionState records which branch of the compaction policy produced a
// ConversationContext.
type CompactionState string

const (
	// StateUncompacted means the transcript fit under the threshold and
	// passed through whole.
	StateUncompacted CompactionState = "uncompacted"

	// StateCompacted means older turns were replaced by a summary digest.
	StateCompacted CompactionState = "compacted"

	// StateOverflowNoCompaction means the transcript crossed the
	// threshold but was too short to split, so it passed through whole.
	// The total may exceed the soft threshold; content is never silently
	// dropped.
	StateOverflowNoCompaction CompactionState = "overflow_no_compaction"
)

// ConversationContext is the bounded view of a transcript handed to the
// prompt builder. It is a value built fresh per call, never persisted, and
// holds no identity of its own.
//
// RecentMessages is always a chronological suffix of the input transcript;
// no entry is ever both summarized and kept verbatim.
type ConversationContext struct {
	// Summary is the compact digest of older turns. Empty when no
	// compaction happened.
	Summary string `json:"summary,omitempty"`

	// SummaryTokens is the estimated cost of Summary, zero when Summary
	// is empty.
	SummaryTokens int `json:"summary_tokens,omitempty"`

	// RecentMessages are the verbatim trailing turns, in chronological
	// order.
	RecentMessages []TranscriptEntry `json:"recent_messages"`

	// RecentTokens is the summed estimated cost of RecentMessages.
	RecentTokens int `json:"recent_tokens"`

	// TotalTokens is SummaryTokens + RecentTokens.
	TotalTokens int `json:"total_tokens"`

	// State records which policy branch built this context.
	State CompactionState `json:"state"`
}

// HasSummary reports whether older turns were compacted into a digest.
func (c *ConversationContext) HasSummary() bool {
	return c.Summary != ""
}
