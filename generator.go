package interviewctx

import "context"

// Generation message roles.
const (
	GenerationRoleUser      = "user"
	GenerationRoleAssistant = "assistant"
)

// GenerationMessage is one role-tagged message sent to the text-generation
// collaborator.
type GenerationMessage struct {
	Role    string
	Content string
}

// GenerationRequest describes one call to the text-generation collaborator.
type GenerationRequest struct {
	// System is the system instruction for the call.
	System string

	// Messages is the ordered conversation sent to the collaborator.
	Messages []GenerationMessage

	// MaxTokens caps the generated output length.
	MaxTokens int

	// Temperature controls sampling; low values bias toward deterministic
	// output. Nil leaves the provider default; an explicit value, zero
	// included, is forwarded.
	Temperature *float64

	// Model names the generation model, where the provider supports
	// per-request model selection.
	Model string
}

// TextGenerator is the external text-generation collaborator. Generate is
// the engine's only suspension point: callers should bound it with their own
// timeout or cancellation via ctx. Failures are recovered internally by the
// summarizer's fallback and never propagate out of a context build.
type TextGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// GeneratorFunc adapts a function to the TextGenerator interface.
type GeneratorFunc func(ctx context.Context, req GenerationRequest) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	return f(ctx, req)
}
