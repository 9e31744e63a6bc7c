package assist

import (
	"context"
	"errors"
	"sync"

	"github.com/docylit/docylit/pkg/domain"
)

// Mock is a scripted Provider for tests and local debugging. It records every
// prompt it receives and never calls an external backend.
type Mock struct {
	// Response is returned by Generate.
	Response string
	// Chunks are emitted by Stream, in order.
	Chunks []string
	// FailGenerate makes Generate return an error.
	FailGenerate bool
	// FailOpen makes Stream fail before any chunk is delivered.
	FailOpen bool
	// FailAfter, when > 0, emits that many chunks and then a terminal error
	// chunk.
	FailAfter int

	mu    sync.Mutex
	calls []Prompt
}

var _ Provider = (*Mock)(nil)

func (m *Mock) Name() string { return "mock" }

// Calls returns the prompts received so far.
func (m *Mock) Calls() []Prompt {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Prompt, len(m.calls))
	copy(out, m.calls)
	return out
}

func (m *Mock) record(p Prompt) {
	m.mu.Lock()
	m.calls = append(m.calls, p)
	m.mu.Unlock()
}

func (m *Mock) Generate(ctx context.Context, p Prompt) (string, error) {
	m.record(p)
	if m.FailGenerate {
		return "", errors.New("mock backend failure")
	}
	return m.Response, nil
}

func (m *Mock) Stream(ctx context.Context, p Prompt) (<-chan domain.Chunk, error) {
	m.record(p)
	if m.FailOpen {
		return nil, errors.New("mock stream open failure")
	}

	ch := make(chan domain.Chunk)
	go func() {
		defer close(ch)
		for i, text := range m.Chunks {
			if m.FailAfter > 0 && i == m.FailAfter {
				ch <- domain.Chunk{Text: "mock mid-stream failure", Err: true}
				return
			}
			select {
			case ch <- domain.Chunk{Text: text}:
			case <-ctx.Done():
				return
			}
		}
		if m.FailAfter > 0 && m.FailAfter >= len(m.Chunks) {
			ch <- domain.Chunk{Text: "mock mid-stream failure", Err: true}
		}
	}()
	return ch, nil
}
