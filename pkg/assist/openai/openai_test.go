package openai

import (
	"errors"
	"testing"

	"github.com/docylit/docylit/pkg/assist"
)

func TestMissingKeyFailsFast(t *testing.T) {
	_, err := New("", "")
	if !errors.Is(err, assist.ErrMissingAPIKey) {
		t.Errorf("New with empty key: err = %v, want ErrMissingAPIKey", err)
	}
}

func TestNewWithKey(t *testing.T) {
	p, err := New("sk-test", "http://localhost:9999/v1")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("Name() = %q, want %q", p.Name(), "openai")
	}
}
