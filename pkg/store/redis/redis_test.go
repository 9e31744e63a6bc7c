package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/docylit/docylit/pkg/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	s, err := New("redis://" + mr.Addr())
	if err != nil {
		t.Fatalf("failed to create redis store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewBadURL(t *testing.T) {
	if _, err := New("not-a-url"); err == nil {
		t.Error("New with bad URL: err = nil, want error")
	}
}

func TestLoadEmpty(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load(context.Background())
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
	if doc.Content != "<p>Hello world</p>" || doc.Title != "My Document" {
		t.Errorf("doc = %+v, want saved content and title", doc)
	}
}

func TestTitlePersistsIndependently(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

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

func TestSaveSurfacesBackendFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	s, err := New("redis://" + mr.Addr())
	if err != nil {
		t.Fatalf("failed to create redis store: %v", err)
	}
	defer s.Close()

	mr.Close()

	if err := s.SaveContent(context.Background(), "<p>late</p>"); err == nil {
		t.Error("SaveContent with backend down: err = nil, want error")
	}
}
