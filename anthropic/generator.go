// Package anthropic implements the text-generation collaborator on top of
// the Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"

	interviewctx "github.com/prakashsanker/yeet-coder-sub002"
)

// Generator implements interviewctx.TextGenerator by streaming from the
// Anthropic Messages API and accumulating the response.
type Generator struct {
	client *anthropic.Client

	// Model is used when the request does not name one.
	model string
}

// NewGenerator creates a Generator. The model is the default for requests
// that do not name their own.
func NewGenerator(client *anthropic.Client, model string) *Generator {
	return &Generator{client: client, model: model}
}

// Generate sends one streaming request and returns the accumulated text.
func (g *Generator) Generate(ctx context.Context, req interviewctx.GenerationRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = g.model
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(req.MaxTokens),
		Messages:  convertMessages(req.Messages),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature != nil {
		params.Temperature = anthropic.Float(*req.Temperature)
	}

	stream := g.client.Messages.NewStreaming(ctx, params)

	message := anthropic.Message{}
	for stream.Next() {
		event := stream.Current()
		if err := message.Accumulate(event); err != nil {
			return "", fmt.Errorf("accumulate stream: %w", err)
		}
	}
	if err := stream.Err(); err != nil {
		return "", fmt.Errorf("anthropic stream: %w", err)
	}

	var text strings.Builder
	for _, block := range message.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(tb.Text)
		}
	}
	if text.Len() == 0 {
		return "", interviewctx.ErrEmptyGeneration
	}
	return text.String(), nil
}

// convertMessages maps role-tagged messages to Anthropic message params.
func convertMessages(messages []interviewctx.GenerationMessage) []anthropic.MessageParam {
	result := make([]anthropic.MessageParam, 0, len(messages))
	for _, msg := range messages {
		block := anthropic.NewTextBlock(msg.Content)
		if msg.Role == interviewctx.GenerationRoleAssistant {
			result = append(result, anthropic.NewAssistantMessage(block))
		} else {
			result = append(result, anthropic.NewUserMessage(block))
		}
	}
	return result
}
