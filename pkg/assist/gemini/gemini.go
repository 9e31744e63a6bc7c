package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/docylit/docylit/pkg/assist"
	"github.com/docylit/docylit/pkg/domain"
)

// Provider implements assist.Provider using the Google Gen AI SDK.
type Provider struct {
	client *genai.Client
}

// Verify interface compliance.
var _ assist.Provider = (*Provider)(nil)

// New creates a new Gemini provider. An empty API key is a fatal
// configuration error: it returns assist.ErrMissingAPIKey immediately.
func New(ctx context.Context, apiKey string) (*Provider, error) {
	if apiKey == "" {
		return nil, assist.ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Provider{client: client}, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string { return "gemini" }

func config(prompt assist.Prompt) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if prompt.System != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: prompt.System}},
		}
	}
	if prompt.Temperature >= 0 {
		cfg.Temperature = genai.Ptr(prompt.Temperature)
	}
	return cfg
}

// Generate sends a single-shot request and returns the full response text.
func (p *Provider) Generate(ctx context.Context, prompt assist.Prompt) (string, error) {
	slog.Debug("Gemini.Generate", "model", prompt.Model)

	resp, err := p.client.Models.GenerateContent(ctx, prompt.Model, genai.Text(prompt.Payload), config(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	// An empty candidate set is an empty answer, not a failure.
	return resp.Text(), nil
}

// Stream opens a streaming request and forwards response text in arrival
// order. A mid-stream failure is delivered as a terminal error chunk.
func (p *Provider) Stream(ctx context.Context, prompt assist.Prompt) (<-chan domain.Chunk, error) {
	slog.Debug("Gemini.Stream", "model", prompt.Model)

	iter := p.client.Models.GenerateContentStream(ctx, prompt.Model, genai.Text(prompt.Payload), config(prompt))

	ch := make(chan domain.Chunk)
	go func() {
		defer close(ch)
		for resp, err := range iter {
			if err != nil {
				ch <- domain.Chunk{Text: err.Error(), Err: true}
				return
			}
			if resp == nil {
				continue
			}
			for _, cand := range resp.Candidates {
				if cand.Content == nil {
					continue
				}
				for _, part := range cand.Content.Parts {
					if part.Text == "" {
						continue
					}
					select {
					case ch <- domain.Chunk{Text: part.Text}:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()
	return ch, nil
}
