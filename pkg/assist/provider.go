// Package assist issues generation requests against an AI backend and maps
// writing-assistance modes to backend instruction profiles. Backend drivers
// live in subpackages (gemini, openai).
package assist

import (
	"context"
	"errors"

	"github.com/docylit/docylit/pkg/domain"
)

// ErrMissingAPIKey is returned by driver constructors when no backend
// credential is configured. No assistance request can ever succeed without
// one, so construction fails fast rather than deferring the error.
var ErrMissingAPIKey = errors.New("backend api key not configured")

// Prompt is a fully assembled backend request.
type Prompt struct {
	// Model identifies the backend model.
	Model string
	// System is the instruction profile derived from the request mode.
	System string
	// Payload carries the document context and the task instruction.
	Payload string
	// Temperature applies to single-shot generation only. Negative means
	// the backend default.
	Temperature float32
}

// Provider is a backend capable of single-shot and streaming generation.
type Provider interface {
	// Name returns the provider identifier (e.g. "gemini", "openai").
	Name() string

	// Generate sends the prompt and blocks for the full response text. An
	// absent or empty response is an empty string, not an error.
	Generate(ctx context.Context, p Prompt) (string, error)

	// Stream opens a streaming response. Chunks arrive on the returned
	// channel in backend order; the channel is closed at end-of-stream. A
	// mid-stream failure is delivered as a terminal chunk with Err set,
	// followed by the close. Stream itself only errors when the request
	// cannot be opened at all.
	Stream(ctx context.Context, p Prompt) (<-chan domain.Chunk, error)
}
