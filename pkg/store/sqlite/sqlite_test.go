package sqlite

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/docylit/docylit/pkg/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	tmpFile := t.TempDir() + "/test.db"
	s, err := New(tmpFile)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		s.Close()
		os.Remove(tmpFile)
	})
	return s
}

func TestLoadEmpty(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Load(ctx)
	if !errors.Is(err, store.ErrNoDocument) {
		t.Fatalf("Load on empty store: err = %v, want ErrNoDocument", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SaveContent(ctx, "<p>Hello world</p>"); err != nil {
		t.Fatalf("SaveContent: %v", err)
	}
	if err := s.SaveTitle(ctx, "My Document"); err != nil {
		t.Fatalf("SaveTitle: %v", err)
	}

	doc, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Content != "<p>Hello world</p>" {
		t.Errorf("Content = %q, want %q", doc.Content, "<p>Hello world</p>")
	}
	if doc.Title != "My Document" {
		t.Errorf("Title = %q, want %q", doc.Title, "My Document")
	}
	if !doc.LastSaved.IsZero() {
		t.Errorf("LastSaved = %v, want zero (runtime-only state)", doc.LastSaved)
	}
}

func TestTitlePersistsIndependently(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Title alone is a loadable document.
	if err := s.SaveTitle(ctx, "Untitled draft"); err != nil {
		t.Fatalf("SaveTitle: %v", err)
	}
	doc, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load after title-only save: %v", err)
	}
	if doc.Title != "Untitled draft" || doc.Content != "" {
		t.Errorf("doc = %+v, want title only", doc)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, content := range []string{"<p>one</p>", "<p>two</p>", "<p>three</p>"} {
		if err := s.SaveContent(ctx, content); err != nil {
			t.Fatalf("SaveContent(%q): %v", content, err)
		}
	}

	doc, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Content != "<p>three</p>" {
		t.Errorf("Content = %q, want last write %q", doc.Content, "<p>three</p>")
	}
}

func TestSaveAfterClose(t *testing.T) {
	s := newTestStore(t)
	s.Close()

	if err := s.SaveContent(context.Background(), "<p>late</p>"); err == nil {
		t.Error("SaveContent after Close: err = nil, want error")
	}
}
