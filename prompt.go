package interviewctx

import "strings"

// SummarizationSystemPrompt is the system instruction for the summarization
// call. It keeps the summarizer focused on the facts an interviewer needs to
// pick the conversation back up: requirements, decisions, trade-offs, and
// concerns.
const SummarizationSystemPrompt = `You are an assistant that summarizes technical interviews concisely. Summarize the conversation so far in a compact form that preserves:
- Requirements the candidate clarified
- Design decisions that were made
- Trade-offs that were discussed
- Concerns or risks that were raised

Use short bullet points. Refer to the participants as "Candidate" and "Interviewer". Do not add information that was not in the conversation.`

// BuildSummarizationPrompt creates the user message for the summarization
// call from the rendered older portion of the transcript.
func BuildSummarizationPrompt(conversationText string) string {
	return `Summarize the following interview conversation.

<conversation>
` + conversationText + `
</conversation>

Produce a short bullet-point digest following your instructions.`
}

// FormatTranscriptAsText renders transcript turns as "<Role>: <text>" lines,
// the wire shape both the summarizer and the context assembler use.
func FormatTranscriptAsText(entries []TranscriptEntry) string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, entry.Speaker.Label()+": "+entry.Text)
	}
	return strings.Join(lines, "\n")
}
