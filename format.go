package interviewctx

import "strings"

// Section headers rendered by FormatForInstructions.
const (
	summaryHeader = "CONVERSATION HISTORY (summarized):"
	recentHeader  = "RECENT CONVERSATION:"
)

// FormatForInstructions renders the context as the linear text block a
// prompt consumes: the summary section when a summary exists, then the
// recent turns as "<Role>: <text>" lines. Empty sections are omitted
// entirely. The output is a pure function of the context value, so repeated
// calls yield identical text.
func (c *ConversationContext) FormatForInstructions() string {
	var b strings.Builder

	if c.HasSummary() {
		b.WriteString(summaryHeader)
		b.WriteString("\n")
		b.WriteString(c.Summary)
		b.WriteString("\n\n")
	}

	if len(c.RecentMessages) > 0 {
		b.WriteString(recentHeader)
		b.WriteString("\n")
		b.WriteString(FormatTranscriptAsText(c.RecentMessages))
	}

	return b.String()
}
