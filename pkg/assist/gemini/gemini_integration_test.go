package gemini_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docylit/docylit/pkg/assist"
	"github.com/docylit/docylit/pkg/assist/gemini"
)

func setupProvider(t *testing.T) *gemini.Provider {
	t.Helper()
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping: GEMINI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	provider, err := gemini.New(ctx, apiKey)
	if err != nil {
		t.Fatalf("gemini.New: %v", err)
	}
	return provider
}

// TestMissingKeyFailsFast runs without credentials on purpose.
func TestMissingKeyFailsFast(t *testing.T) {
	_, err := gemini.New(context.Background(), "")
	if !errors.Is(err, assist.ErrMissingAPIKey) {
		t.Errorf("New with empty key: err = %v, want ErrMissingAPIKey", err)
	}
}

func TestIntegrationGeminiName(t *testing.T) {
	p := setupProvider(t)
	if p.Name() != "gemini" {
		t.Errorf("Name() = %q, want %q", p.Name(), "gemini")
	}
}

// TestIntegrationGeminiGenerate verifies a simple single-shot response.
func TestIntegrationGeminiGenerate(t *testing.T) {
	p := setupProvider(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	text, err := p.Generate(ctx, assist.Prompt{
		Model:       "gemini-2.5-flash",
		System:      "You are a test responder.",
		Payload:     "Reply with exactly: HELLO",
		Temperature: 0,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(text, "HELLO") {
		t.Errorf("response = %q, want it to contain HELLO", text)
	}
}

// TestIntegrationGeminiStream verifies chunked delivery and clean termination.
func TestIntegrationGeminiStream(t *testing.T) {
	p := setupProvider(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ch, err := p.Stream(ctx, assist.Prompt{
		Model:       "gemini-2.5-flash",
		Payload:     "Count from 1 to 5, one number per line.",
		Temperature: -1,
	})
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}

	var sb strings.Builder
	for chunk := range ch {
		if chunk.Err {
			t.Fatalf("stream error chunk: %s", chunk.Text)
		}
		sb.WriteString(chunk.Text)
	}
	if sb.Len() == 0 {
		t.Error("stream produced no text")
	}
	t.Logf("streamed: %s", sb.String())
}
