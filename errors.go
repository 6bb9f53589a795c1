package interviewctx

import (
	"errors"
	"fmt"
)

// Sentinel errors for context engine operations.
var (
	// ErrInvalidConfig indicates invalid engine configuration.
	ErrInvalidConfig = errors.New("invalid context engine configuration")

	// ErrNilGenerator indicates the engine was created without a text
	// generator.
	ErrNilGenerator = errors.New("text generator is required")

	// ErrSummarizationFailed indicates the external generation call
	// failed. It is logged and recovered via the local fallback digest,
	// never surfaced to engine callers.
	ErrSummarizationFailed = errors.New("summarization failed")

	// ErrEmptyGeneration indicates the collaborator returned no text.
	ErrEmptyGeneration = errors.New("empty response from text generator")
)

// ContextError provides structured error context for engine operations.
type ContextError struct {
	// Op is the operation that failed (e.g., "Summarize", "Generate").
	Op string

	// Err is the underlying error.
	Err error

	// Context holds additional key-value pairs for debugging.
	Context map[string]any
}

// Error returns a formatted error message.
func (e *ContextError) Error() string {
	msg := fmt.Sprintf("interviewctx %s failed", e.Op)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *ContextError) Unwrap() error {
	return e.Err
}

// NewContextError creates a new ContextError with the given operation and
// underlying error.
func NewContextError(op string, err error) *ContextError {
	return &ContextError{
		Op:      op,
		Err:     err,
		Context: make(map[string]any),
	}
}

// WithContext adds a key-value pair to the error context and returns the
// error for chaining.
func (e *ContextError) WithContext(key string, value any) *ContextError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
