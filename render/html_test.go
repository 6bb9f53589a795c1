package render

import (
	"strings"
	"testing"

	interviewctx "github.com/prakashsanker/yeet-coder-sub002"
)

func TestSummaryHTML(t *testing.T) {
	r := New()
	cc := &interviewctx.ConversationContext{
		Summary: "- Candidate: chose Postgres\n- Interviewer: asked about failover",
	}

	html, err := r.SummaryHTML(cc)
	if err != nil {
		t.Fatalf("SummaryHTML() error = %v", err)
	}
	out := string(html)
	if !strings.Contains(out, "<li>") {
		t.Errorf("bullet digest not rendered as a list: %q", out)
	}
	if !strings.Contains(out, "chose Postgres") {
		t.Errorf("summary content missing: %q", out)
	}
}

func TestSummaryHTMLEmpty(t *testing.T) {
	r := New()
	html, err := r.SummaryHTML(&interviewctx.ConversationContext{})
	if err != nil {
		t.Fatalf("SummaryHTML() error = %v", err)
	}
	if html != "" {
		t.Errorf("SummaryHTML(no summary) = %q, want empty", html)
	}
}

func TestContextHTMLSanitizesScripts(t *testing.T) {
	r := New()
	cc := &interviewctx.ConversationContext{
		Summary: "- Candidate: said <script>alert('xss')</script> about caching",
		RecentMessages: []interviewctx.TranscriptEntry{
			{Speaker: interviewctx.SpeakerUser, Text: `<img src=x onerror="alert(1)">`},
		},
	}

	html, err := r.ContextHTML(cc)
	if err != nil {
		t.Fatalf("ContextHTML() error = %v", err)
	}
	out := string(html)
	if strings.Contains(out, "<script") || strings.Contains(out, "<img") {
		t.Errorf("unsanitized HTML leaked through: %q", out)
	}
	if !strings.Contains(out, "about caching") {
		t.Errorf("legitimate content stripped: %q", out)
	}
}

func TestContextHTMLDeterministic(t *testing.T) {
	r := New()
	cc := &interviewctx.ConversationContext{
		Summary: "- Interviewer: probed on consistency",
		RecentMessages: []interviewctx.TranscriptEntry{
			{Speaker: interviewctx.SpeakerUser, Text: "eventual consistency is fine here"},
		},
	}

	first, err := r.ContextHTML(cc)
	if err != nil {
		t.Fatalf("ContextHTML() error = %v", err)
	}
	second, err := r.ContextHTML(cc)
	if err != nil {
		t.Fatalf("ContextHTML() error = %v", err)
	}
	if first != second {
		t.Error("repeated rendering differs")
	}
}
