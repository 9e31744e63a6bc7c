package assist

import (
	"context"
	"log/slog"

	"github.com/docylit/docylit/pkg/domain"
)

// ErrorSentinel is the user-facing text returned in place of a real answer
// when the backend fails. The editing session must never crash on an AI
// failure, so failures travel through the normal success-shaped channel.
const ErrorSentinel = "Sorry, I couldn't generate a response right now. Please try again."

// IsSentinel reports whether text is the failure sentinel rather than a real
// generation result.
func IsSentinel(text string) bool { return text == ErrorSentinel }

// DefaultTemperature is the fixed creativity setting for single-shot
// generation. Conservative mid-range; not exposed for streaming.
const DefaultTemperature = 0.5

// preamble is prepended to every single-shot instruction profile.
const preamble = "You are a writing assistant embedded in a rich-text document editor. " +
	"Work with the user's document and respond with the requested text only, no commentary."

// modeInstructions maps each mode to its single-shot instruction profile
// (without the preamble).
var modeInstructions = map[domain.Mode]string{
	domain.ModeContinue:  "Continue the text naturally from where the context ends. Keep the formatting simple.",
	domain.ModeSummarize: "Produce a concise summary of the text.",
	domain.ModeFix:       "Correct grammar and spelling mistakes without changing the meaning.",
	domain.ModeTone:      "Rewrite the text to be more professional and concise.",
	domain.ModeCustom:    "Follow the user's instruction exactly as given.",
}

// streamInstruction is the fixed profile for the streaming path. Streaming
// output is inserted directly, so the model is steered toward raw text or
// simple HTML fragments rather than full prose scaffolding.
const streamInstruction = "You are a writing assistant. Respond with plain text or a simple HTML fragment " +
	"(<p>, <b>, <i>, <u>, <ul>, <ol>, <li> only) suitable for direct insertion into a document. " +
	"No markdown, no code fences, no commentary."

// Option configures a Client.
type Option func(*Client)

// WithModel overrides the backend model identifier.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithTemperature overrides the single-shot temperature.
func WithTemperature(t float32) Option {
	return func(c *Client) { c.temperature = t }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// Client builds instruction profiles from assistance requests and dispatches
// them to a backend provider. Transport and backend failures are recovered
// here and surfaced as sentinel values, never as errors or panics.
type Client struct {
	provider    Provider
	model       string
	temperature float32
	logger      *slog.Logger
}

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// New creates a client over the given provider.
func New(provider Provider, opts ...Option) *Client {
	c := &Client{
		provider:    provider,
		model:       DefaultModel,
		temperature: DefaultTemperature,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generate performs a single-shot generation and returns the full text. A
// no-op request (continue mode with an empty prompt) returns "" without
// touching the backend. On any failure the result is ErrorSentinel.
func (c *Client) Generate(ctx context.Context, req domain.AssistanceRequest) string {
	if req.Noop() {
		return ""
	}
	if err := req.Validate(); err != nil {
		c.logger.Warn("assist: rejected request", "mode", req.Mode, "error", err)
		return ErrorSentinel
	}

	p := Prompt{
		Model:       c.model,
		System:      preamble + "\n\n" + modeInstructions[req.Mode],
		Payload:     "Context/Current Text: \"" + req.Context + "\"\n\nTask: " + req.Task(),
		Temperature: c.temperature,
	}

	text, err := c.provider.Generate(ctx, p)
	if err != nil {
		c.logger.Error("assist: generate failed", "provider", c.provider.Name(), "mode", req.Mode, "error", err)
		return ErrorSentinel
	}
	return text
}

// GenerateStream opens a streaming generation and invokes onChunk once per
// received chunk, in arrival order, until the stream ends. On failure,
// whether at open or mid-stream, onChunk is invoked exactly once more with
// ErrorSentinel and the stream stops.
func (c *Client) GenerateStream(ctx context.Context, prompt, docContext string, onChunk func(string)) {
	p := Prompt{
		Model:       c.model,
		System:      streamInstruction,
		Payload:     "Context: \"" + docContext + "\"\n\nInstruction: " + prompt,
		Temperature: -1,
	}

	ch, err := c.provider.Stream(ctx, p)
	if err != nil {
		c.logger.Error("assist: stream open failed", "provider", c.provider.Name(), "error", err)
		onChunk(ErrorSentinel)
		return
	}

	for chunk := range ch {
		if chunk.Err {
			c.logger.Error("assist: stream failed", "provider", c.provider.Name(), "error", chunk.Text)
			onChunk(ErrorSentinel)
			return
		}
		onChunk(chunk.Text)
	}
}
