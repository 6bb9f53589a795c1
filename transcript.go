package interviewctx

import "time"

// Speaker identifies which side of the interview produced an utterance.
type Speaker string

const (
	// SpeakerUser is the interview candidate.
	SpeakerUser Speaker = "user"

	// SpeakerInterviewer is the AI interviewer persona.
	SpeakerInterviewer Speaker = "interviewer"
)

// Label returns the display name used when transcript turns are rendered
// for prompts and summaries.
func (s Speaker) Label() string {
	switch s {
	case SpeakerInterviewer:
		return "Interviewer"
	default:
		return "Candidate"
	}
}

// TranscriptEntry is one utterance in an interview transcript. Entries are
// created by the caller as each turn completes and are never mutated by this
// package: token annotation happens on a derived copy.
type TranscriptEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Speaker   Speaker   `json:"speaker"`
	Text      string    `json:"text"`

	// EstimatedTokens is the precomputed token cost of Text. Zero means
	// "not yet estimated"; the cost is then computed on demand. An entry
	// with empty text genuinely costs zero, so the overlap is harmless.
	EstimatedTokens int `json:"estimated_tokens,omitempty"`
}

// tokens returns the entry's token cost, estimating from Text when no
// precomputed cost is attached.
func (e TranscriptEntry) tokens(est TokenEstimator) int {
	if e.EstimatedTokens > 0 {
		return e.EstimatedTokens
	}
	return est.EstimateTokens(e.Text)
}

// annotateTokens returns a copy of the transcript in which every entry
// carries a token estimate. The input slice and its entries are untouched.
func annotateTokens(entries []TranscriptEntry, est TokenEstimator) []TranscriptEntry {
	annotated := make([]TranscriptEntry, len(entries))
	for i, entry := range entries {
		entry.EstimatedTokens = entry.tokens(est)
		annotated[i] = entry
	}
	return annotated
}
