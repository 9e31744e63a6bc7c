// Package docylit wires the document editor core together: an editing
// surface, debounced autosave into a durable store, text statistics, and an
// AI writing assistant. Presentation layers embed an Editor and render
// around it; docylit itself has no UI and no server surface.
package docylit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/docylit/docylit/pkg/assist"
	"github.com/docylit/docylit/pkg/autosave"
	"github.com/docylit/docylit/pkg/config"
	"github.com/docylit/docylit/pkg/domain"
	"github.com/docylit/docylit/pkg/editor"
	"github.com/docylit/docylit/pkg/session"
	"github.com/docylit/docylit/pkg/stats"
	"github.com/docylit/docylit/pkg/store"
)

// Editor is an assembled editing session over a single document.
type Editor struct {
	surface editor.Surface
	store   store.DocumentStore

	// Autosave owns the dirty/saving state and the debounce timer.
	Autosave *autosave.Scheduler
	// Format dispatches formatting commands and reports them as edits.
	Format *editor.Dispatcher
	// Assist drives the AI assistance session.
	Assist *session.Controller

	mu    sync.Mutex
	title string
}

// Option configures an Editor.
type Option func(*opts)

type opts struct {
	autosave    []autosave.Option
	clientOpts  []assist.Option
	sessionOpts []session.Option
}

// WithLogger sets the logger used by all components.
func WithLogger(l *slog.Logger) Option {
	return func(o *opts) {
		o.autosave = append(o.autosave, autosave.WithLogger(l))
		o.clientOpts = append(o.clientOpts, assist.WithLogger(l))
		o.sessionOpts = append(o.sessionOpts, session.WithLogger(l))
	}
}

// WithAutosaveOptions forwards options to the autosave scheduler.
func WithAutosaveOptions(aopts ...autosave.Option) Option {
	return func(o *opts) { o.autosave = append(o.autosave, aopts...) }
}

// WithClientOptions forwards options to the assistance client.
func WithClientOptions(copts ...assist.Option) Option {
	return func(o *opts) { o.clientOpts = append(o.clientOpts, copts...) }
}

// WithSessionOptions forwards options to the session controller.
func WithSessionOptions(sopts ...session.Option) Option {
	return func(o *opts) { o.sessionOpts = append(o.sessionOpts, sopts...) }
}

// New assembles an editor from its parts and loads the saved document into
// the surface. With no prior document the surface is initialized to an empty
// paragraph. The editor takes ownership of the store and closes it on Close.
func New(ctx context.Context, st store.DocumentStore, provider assist.Provider, surface editor.Surface, options ...Option) (*Editor, error) {
	var o opts
	for _, opt := range options {
		opt(&o)
	}

	doc, err := st.Load(ctx)
	switch {
	case errors.Is(err, store.ErrNoDocument):
		surface.SetMarkup(editor.EmptyDocument)
		doc = &domain.DocumentState{}
	case err != nil:
		return nil, fmt.Errorf("load document: %w", err)
	default:
		surface.SetMarkup(doc.Content)
	}

	e := &Editor{
		surface: surface,
		store:   st,
		title:   doc.Title,
	}

	e.Autosave = autosave.New(st, surface, o.autosave...)
	e.Format = editor.NewDispatcher(surface, e.Autosave)

	client := assist.New(provider, o.clientOpts...)
	e.Assist = session.New(client, surface, e.Autosave, o.sessionOpts...)

	return e, nil
}

// Open assembles an editor from configuration: it opens the configured store
// and backend provider, then calls New. A missing backend credential fails
// here, fast.
func Open(ctx context.Context, cfg config.Config, surface editor.Surface, options ...Option) (*Editor, error) {
	st, err := cfg.OpenStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	provider, err := cfg.NewProvider(ctx)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("init provider: %w", err)
	}

	// Config-derived options come first so explicit options win.
	options = append([]Option{
		WithAutosaveOptions(autosave.WithDelay(cfg.Debounce())),
		WithClientOptions(assist.WithModel(cfg.Model), assist.WithTemperature(cfg.Temperature)),
	}, options...)
	return New(ctx, st, provider, surface, options...)
}

// Surface returns the editing surface the editor operates on.
func (e *Editor) Surface() editor.Surface { return e.surface }

// NoteEdit records a text edit on the surface, scheduling an autosave.
func (e *Editor) NoteEdit() { e.Autosave.NoteEdit() }

// Stats computes the document's current text statistics.
func (e *Editor) Stats() domain.TextStats {
	return stats.Compute(e.surface.PlainText())
}

// Title returns the in-memory title.
func (e *Editor) Title() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.title
}

// SetTitle updates the title and persists it immediately, bypassing the
// content debounce.
func (e *Editor) SetTitle(ctx context.Context, title string) error {
	if err := e.Autosave.SetTitle(ctx, title); err != nil {
		return err
	}
	e.mu.Lock()
	e.title = title
	e.mu.Unlock()
	return nil
}

// Document returns a snapshot of the current document state.
func (e *Editor) Document() domain.DocumentState {
	return domain.DocumentState{
		Title:     e.Title(),
		Content:   e.surface.Markup(),
		LastSaved: e.Autosave.LastSaved(),
	}
}

// Close flushes any pending save, shuts down the assistance session, and
// closes the store.
func (e *Editor) Close(ctx context.Context) error {
	flushErr := e.Autosave.Flush(ctx)
	e.Autosave.Stop()
	e.Assist.Close()
	if err := e.store.Close(); err != nil {
		return err
	}
	return flushErr
}
