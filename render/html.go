// Package render turns a built conversation context into sanitized HTML for
// the post-interview review surface.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	interviewctx "github.com/prakashsanker/yeet-coder-sub002"
)

// Renderer converts context markdown to sanitized HTML.
type Renderer struct {
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

// New creates a Renderer with GitHub-flavored markdown and a UGC
// sanitization policy.
func New() *Renderer {
	return &Renderer{
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy:   bluemonday.UGCPolicy(),
	}
}

// SummaryHTML renders the context's summary digest (bullet-point markdown)
// as sanitized HTML. Returns empty HTML when there is no summary.
func (r *Renderer) SummaryHTML(cc *interviewctx.ConversationContext) (template.HTML, error) {
	if !cc.HasSummary() {
		return "", nil
	}
	return r.toHTML(cc.Summary)
}

// ContextHTML renders the full assembled context block as sanitized HTML.
func (r *Renderer) ContextHTML(cc *interviewctx.ConversationContext) (template.HTML, error) {
	return r.toHTML(cc.FormatForInstructions())
}

func (r *Renderer) toHTML(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}
