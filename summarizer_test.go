package interviewctx

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func newTestSummarizer(generator TextGenerator) *Summarizer {
	cfg := DefaultConfig()
	return NewSummarizer(generator, cfg, nil)
}

func TestSummarizePrimaryPath(t *testing.T) {
	calls := 0
	generator := GeneratorFunc(func(ctx context.Context, req GenerationRequest) (string, error) {
		calls++
		return "  - Candidate: asked about scaling  \n", nil
	})
	s := newTestSummarizer(generator)

	got := s.Summarize(context.Background(), transcriptOf(6, 10))

	if calls != 1 {
		t.Errorf("generator called %d times, want exactly 1", calls)
	}
	if got != "- Candidate: asked about scaling" {
		t.Errorf("Summarize() = %q, want trimmed generator output", got)
	}
}

func TestSummarizeForwardsZeroTemperature(t *testing.T) {
	var captured GenerationRequest
	generator := GeneratorFunc(func(ctx context.Context, req GenerationRequest) (string, error) {
		captured = req
		return "digest", nil
	})

	zero := 0.0
	cfg := &Config{SummarizerTemperature: &zero}
	cfg.ApplyDefaults()
	s := NewSummarizer(generator, cfg, nil)

	_ = s.Summarize(context.Background(), transcriptOf(6, 10))

	if captured.Temperature == nil || *captured.Temperature != 0 {
		t.Errorf("Temperature = %v, want explicit 0", captured.Temperature)
	}
}

func TestSummarizeEmptyInput(t *testing.T) {
	s := newTestSummarizer(fixedGenerator("unused"))
	if got := s.Summarize(context.Background(), nil); got != "" {
		t.Errorf("Summarize(nil) = %q, want empty", got)
	}
}

func TestSummarizeFallsBackOnError(t *testing.T) {
	tests := []struct {
		name      string
		generator TextGenerator
	}{
		{
			name:      "transport error",
			generator: failingGenerator(errors.New("connection refused")),
		},
		{
			name:      "context deadline",
			generator: failingGenerator(context.DeadlineExceeded),
		},
		{
			name:      "empty response",
			generator: fixedGenerator("   \n\t "),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSummarizer(tt.generator)
			entries := transcriptOf(12, 10)

			got := s.Summarize(context.Background(), entries)

			if got == "" {
				t.Fatal("Summarize() returned empty digest on failure path")
			}
			if got != s.FallbackDigest(entries) {
				t.Errorf("Summarize() = %q, want fallback digest", got)
			}
		})
	}
}

func TestFallbackDigest(t *testing.T) {
	s := newTestSummarizer(fixedGenerator("unused"))

	long := strings.Repeat("abcdefghij", 20) // 200 chars
	entries := []TranscriptEntry{
		{Speaker: SpeakerUser, Text: "first turn, should be dropped"},
		{Speaker: SpeakerInterviewer, Text: "tell me about your design"},
		{Speaker: SpeakerUser, Text: long},
		{Speaker: SpeakerInterviewer, Text: "what about failure modes?"},
		{Speaker: SpeakerUser, Text: "we could use a write-ahead log"},
		{Speaker: SpeakerInterviewer, Text: "and the cost trade-off?"},
	}

	got := s.FallbackDigest(entries)
	lines := strings.Split(got, "\n")

	if len(lines) != DefaultFallbackEntries {
		t.Fatalf("digest has %d lines, want %d", len(lines), DefaultFallbackEntries)
	}
	if strings.Contains(got, "first turn") {
		t.Error("digest contains a turn older than the last 5")
	}
	if lines[0] != "- Interviewer: tell me about your design..." {
		t.Errorf("lines[0] = %q", lines[0])
	}
	if lines[1] != "- Candidate: "+long[:DefaultFallbackTruncateAt]+"..." {
		t.Errorf("long turn not truncated to %d chars: %q", DefaultFallbackTruncateAt, lines[1])
	}
	if lines[4] != "- Interviewer: and the cost trade-off?..." {
		t.Errorf("lines[4] = %q", lines[4])
	}
}

func TestFallbackDigestTruncatesByCharacters(t *testing.T) {
	s := newTestSummarizer(fixedGenerator("unused"))

	// A two-byte rune sits exactly on the 100-character boundary; byte
	// slicing would cut it in half.
	straddling := strings.Repeat("a", 99) + "é" + " and more after the cut"
	entries := []TranscriptEntry{
		{Speaker: SpeakerUser, Text: straddling},
		{Speaker: SpeakerInterviewer, Text: "comment ça s'intègre à l'API?"},
	}

	got := s.FallbackDigest(entries)

	if !utf8.ValidString(got) {
		t.Fatalf("digest is not valid UTF-8: %q", got)
	}
	lines := strings.Split(got, "\n")
	if lines[0] != "- Candidate: "+strings.Repeat("a", 99)+"é..." {
		t.Errorf("lines[0] = %q, want 100-character prefix ending in é", lines[0])
	}
	if lines[1] != "- Interviewer: comment ça s'intègre à l'API?..." {
		t.Errorf("short accented turn altered: %q", lines[1])
	}
}

func TestFallbackDigestShortTranscript(t *testing.T) {
	s := newTestSummarizer(fixedGenerator("unused"))
	entries := []TranscriptEntry{
		{Speaker: SpeakerUser, Text: "only turn"},
	}

	got := s.FallbackDigest(entries)

	if got != "- Candidate: only turn..." {
		t.Errorf("FallbackDigest() = %q", got)
	}
}

func TestFormatTranscriptAsText(t *testing.T) {
	entries := []TranscriptEntry{
		{Speaker: SpeakerInterviewer, Text: "walk me through your approach"},
		{Speaker: SpeakerUser, Text: "I would start with the data model"},
	}

	got := FormatTranscriptAsText(entries)
	want := "Interviewer: walk me through your approach\nCandidate: I would start with the data model"
	if got != want {
		t.Errorf("FormatTranscriptAsText() = %q, want %q", got, want)
	}
}
