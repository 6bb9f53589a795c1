package interviewctx

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Summarizer compresses the older, non-recent portion of a transcript into a
// compact digest. The primary path makes exactly one call to the
// text-generation collaborator; every failure of that call degrades to a
// deterministic local digest, so Summarize never fails.
type Summarizer struct {
	generator TextGenerator
	config    *Config
	logger    *slog.Logger
}

// NewSummarizer creates a Summarizer. The config must already have defaults
// applied; a nil logger selects slog.Default.
func NewSummarizer(generator TextGenerator, config *Config, logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{
		generator: generator,
		config:    config,
		logger:    logger,
	}
}

// Summarize produces a digest of the given older transcript turns. It is
// non-empty whenever entries is non-empty. Collaborator failures are logged
// and recovered locally, never propagated.
func (s *Summarizer) Summarize(ctx context.Context, entries []TranscriptEntry) string {
	if len(entries) == 0 {
		return ""
	}

	digest, err := s.generate(ctx, entries)
	if err != nil {
		s.logger.Warn("summarization failed, using local fallback digest",
			"error", err,
			"entries", len(entries))
		return s.FallbackDigest(entries)
	}
	return digest
}

// generate runs the primary summarization path against the collaborator.
func (s *Summarizer) generate(ctx context.Context, entries []TranscriptEntry) (string, error) {
	if s.generator == nil {
		return "", NewContextError("Summarize", ErrNilGenerator)
	}

	prompt := BuildSummarizationPrompt(FormatTranscriptAsText(entries))

	text, err := s.generator.Generate(ctx, GenerationRequest{
		System:      SummarizationSystemPrompt,
		Messages:    []GenerationMessage{{Role: GenerationRoleUser, Content: prompt}},
		MaxTokens:   s.config.SummarizerMaxTokens,
		Temperature: s.config.SummarizerTemperature,
		Model:       s.config.SummarizerModel,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSummarizationFailed, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: %v", ErrSummarizationFailed, ErrEmptyGeneration)
	}
	return text, nil
}

// FallbackDigest builds the deterministic local digest: the last
// FallbackEntries turns in chronological order, each truncated to
// FallbackTruncateAt characters, one "- <Role>: <text>..." line per turn.
// It cannot fail and is non-empty for non-empty input.
func (s *Summarizer) FallbackDigest(entries []TranscriptEntry) string {
	keep := s.config.FallbackEntries
	if keep > len(entries) {
		keep = len(entries)
	}
	tail := entries[len(entries)-keep:]

	lines := make([]string, 0, len(tail))
	for _, entry := range tail {
		// Truncation counts characters, not bytes; a byte slice could cut a
		// multi-byte rune in half and leak invalid UTF-8 into the prompt.
		text := entry.Text
		if runes := []rune(text); len(runes) > s.config.FallbackTruncateAt {
			text = string(runes[:s.config.FallbackTruncateAt])
		}
		lines = append(lines, "- "+entry.Speaker.Label()+": "+text+"...")
	}
	return strings.Join(lines, "\n")
}
