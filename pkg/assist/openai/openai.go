// Package openai provides an assist.Provider backed by the official
// openai-go SDK (chat completions), for deployments that point the editor at
// an OpenAI-compatible backend instead of Gemini.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/docylit/docylit/pkg/assist"
	"github.com/docylit/docylit/pkg/domain"
)

// Provider implements assist.Provider using chat completions.
type Provider struct {
	opts []option.RequestOption
}

var _ assist.Provider = (*Provider)(nil)

// New creates a new OpenAI provider. An empty API key is a fatal
// configuration error. baseURL may be empty for the default endpoint.
func New(apiKey, baseURL string) (*Provider, error) {
	if apiKey == "" {
		return nil, assist.ErrMissingAPIKey
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Provider{opts: opts}, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string { return "openai" }

func (p *Provider) params(prompt assist.Prompt) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(prompt.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.Payload),
		},
	}
	if prompt.Temperature >= 0 {
		params.Temperature = openai.Float(float64(prompt.Temperature))
	}
	return params
}

// Generate sends a single-shot request and returns the full response text.
func (p *Provider) Generate(ctx context.Context, prompt assist.Prompt) (string, error) {
	slog.Debug("OpenAI.Generate", "model", prompt.Model)

	client := openai.NewClient(p.opts...)
	resp, err := client.Chat.Completions.New(ctx, p.params(prompt))
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Stream opens a streaming chat completion and forwards content deltas in
// arrival order. A mid-stream failure is delivered as a terminal error chunk.
func (p *Provider) Stream(ctx context.Context, prompt assist.Prompt) (<-chan domain.Chunk, error) {
	slog.Debug("OpenAI.Stream", "model", prompt.Model)

	client := openai.NewClient(p.opts...)
	stream := client.Chat.Completions.NewStreaming(ctx, p.params(prompt))

	ch := make(chan domain.Chunk)
	go func() {
		defer close(ch)
		defer stream.Close()
		for stream.Next() {
			chunk := stream.Current()
			if len(chunk.Choices) == 0 {
				continue
			}
			delta := chunk.Choices[0].Delta.Content
			if delta == "" {
				continue
			}
			select {
			case ch <- domain.Chunk{Text: delta}:
			case <-ctx.Done():
				return
			}
		}
		if err := stream.Err(); err != nil {
			ch <- domain.Chunk{Text: err.Error(), Err: true}
		}
	}()
	return ch, nil
}
