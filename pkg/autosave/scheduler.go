// Package autosave debounces edit events into document store writes.
package autosave

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/docylit/docylit/pkg/editor"
	"github.com/docylit/docylit/pkg/store"
)

// DefaultDelay is the debounce interval between the last edit event and the
// persisted write.
const DefaultDelay = 1000 * time.Millisecond

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithDelay overrides the debounce interval.
func WithDelay(d time.Duration) Option {
	return func(s *Scheduler) { s.delay = d }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) { s.logger = l }
}

// WithOnSaved registers a callback invoked after every successful content
// save with the save timestamp.
func WithOnSaved(fn func(time.Time)) Option {
	return func(s *Scheduler) { s.onSaved = fn }
}

// WithOnError registers a callback invoked when a content save fails. The
// store never fails silently: without a callback the error is still logged
// and retained in Err.
func WithOnError(fn func(error)) Option {
	return func(s *Scheduler) { s.onError = fn }
}

// WithClock overrides the time source used for save timestamps (test hook).
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// Scheduler owns the document's dirty/saving state. Edit events restart a
// single debounce timer; only the final event in a burst triggers a write
// (last-writer-wins, exactly one save per idle period). Title changes write
// through immediately and never touch the timer.
type Scheduler struct {
	store   store.DocumentStore
	surface editor.Surface
	delay   time.Duration
	logger  *slog.Logger
	now     func() time.Time
	onSaved func(time.Time)
	onError func(error)

	mu        sync.Mutex
	timer     *time.Timer
	pending   bool
	stopped   bool
	lastSaved time.Time
	lastErr   error
}

// New creates a scheduler persisting the surface's markup to the store.
func New(st store.DocumentStore, surface editor.Surface, opts ...Option) *Scheduler {
	s := &Scheduler{
		store:   st,
		surface: surface,
		delay:   DefaultDelay,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NoteEdit records an edit event: the scheduler becomes pending and the
// debounce timer restarts. Any earlier pending timer is cancelled first, so
// N edits inside the window produce exactly one write.
func (s *Scheduler) NoteEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.pending = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		s.save(context.Background())
	})
}

// Flush persists the current content immediately, cancelling any pending
// timer. It is a no-op when nothing is pending. Intended for shutdown paths.
func (s *Scheduler) Flush(ctx context.Context) error {
	s.mu.Lock()
	if !s.pending {
		s.mu.Unlock()
		return nil
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	return s.save(ctx)
}

// SetTitle writes the title through to the store immediately, independently
// of any pending content save. The store error, if any, is returned directly.
func (s *Scheduler) SetTitle(ctx context.Context, title string) error {
	return s.store.SaveTitle(ctx, title)
}

// Pending reports whether a save is scheduled or in flight. Presentation
// layers render it as a "Saving…" indicator.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// LastSaved returns the timestamp of the last successful content save, or
// the zero time when none has happened yet.
func (s *Scheduler) LastSaved() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved
}

// Err returns the error of the most recent failed save. It is cleared by the
// next successful save.
func (s *Scheduler) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Stop cancels any pending timer and rejects further edit events. It does
// not flush; call Flush first to persist outstanding changes.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = false
}

// save reads the surface and writes the content entry. The scheduler returns
// to clean whether or not the write succeeded; a failure is surfaced through
// the OnError callback and Err, never masked as success.
func (s *Scheduler) save(ctx context.Context) error {
	markup := s.surface.Markup()
	err := s.store.SaveContent(ctx, markup)

	s.mu.Lock()
	s.pending = false
	s.timer = nil
	var notifySaved func(time.Time)
	var notifyErr func(error)
	var at time.Time
	if err != nil {
		s.lastErr = err
		notifyErr = s.onError
	} else {
		s.lastErr = nil
		at = s.now()
		s.lastSaved = at
		notifySaved = s.onSaved
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("autosave: content save failed", "error", err)
		if notifyErr != nil {
			notifyErr(err)
		}
		return err
	}

	s.logger.Debug("autosave: content saved", "bytes", len(markup), "at", at)
	if notifySaved != nil {
		notifySaved(at)
	}
	return nil
}
