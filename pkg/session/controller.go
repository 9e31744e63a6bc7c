// Package session orchestrates a single user-facing AI interaction: capture
// context, dispatch the request, track the lifecycle, and insert accepted
// results into the editing surface.
package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/docylit/docylit/pkg/assist"
	"github.com/docylit/docylit/pkg/domain"
	"github.com/docylit/docylit/pkg/editor"
	"github.com/docylit/docylit/pkg/markup"
)

// State is the observable lifecycle state of an assistance session.
type State string

const (
	// StateIdle means no request is in flight and no result is held.
	StateIdle State = "idle"
	// StateLoading means a request has been dispatched and not yet resolved.
	StateLoading State = "loading"
	// StateResponded means a result is held for user review.
	StateResponded State = "responded"
	// StateErrored means a user-facing error string is held. The shape is
	// the same as responded, but insertion is not allowed.
	StateErrored State = "errored"
)

// ErrEmptyPrompt rejects a continue-mode submit with no prompt text.
var ErrEmptyPrompt = errors.New("empty prompt")

// ErrBusy rejects a submit while a request is already in flight.
var ErrBusy = errors.New("a request is already in flight")

// ErrNotResponded rejects Insert outside the responded state.
var ErrNotResponded = errors.New("no result to insert")

// Generator is the slice of the assistance client the controller needs.
// assist.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, req domain.AssistanceRequest) string
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithOnChange registers an observer invoked after every state transition.
// The observer runs outside the controller's lock; calls back into the
// controller are safe.
func WithOnChange(fn func(State)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// WithNormalizer overrides the result normalization applied before insertion.
// The default is markup.NormalizeModelOutput.
func WithNormalizer(fn func(string) string) Option {
	return func(c *Controller) { c.normalize = fn }
}

// Controller drives the assistance session state machine
// idle → loading → {responded, errored} → idle. A generation token guards
// against a stale response from a superseded or closed session overwriting a
// newer state.
type Controller struct {
	client    Generator
	surface   editor.Surface
	notifier  editor.Notifier
	logger    *slog.Logger
	onChange  func(State)
	normalize func(string) string

	mu     sync.Mutex
	state  State
	result string
	token  string // generation token of the in-flight request
	closed bool
}

// New creates a controller. notifier may be nil; when set, accepted
// insertions fire an edit event so autosave picks them up.
func New(client Generator, surface editor.Surface, notifier editor.Notifier, opts ...Option) *Controller {
	c := &Controller{
		client:    client,
		surface:   surface,
		notifier:  notifier,
		logger:    slog.Default(),
		normalize: markup.NormalizeModelOutput,
		state:     StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Result returns the held result text. ok is false outside the responded and
// errored states.
func (c *Controller) Result() (text string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateResponded && c.state != StateErrored {
		return "", false
	}
	return c.result, true
}

// Submit dispatches an assistance request. The document context is the
// current selection, or the full plain text when nothing is selected. An
// empty continue prompt is rejected without a transition; so is a submit
// while a request is in flight. Errored and responded states allow a retry
// submit, discarding the held result.
func (c *Controller) Submit(ctx context.Context, prompt string, mode domain.Mode) error {
	req := domain.AssistanceRequest{Prompt: prompt, Mode: mode}
	if req.Noop() {
		return ErrEmptyPrompt
	}
	if err := req.Validate(); err != nil {
		return err
	}

	// Context capture happens outside the lock; the surface is owned by the
	// same event path that calls Submit.
	sel := c.surface.SelectionText()
	if strings.TrimSpace(sel) != "" {
		req.Context = sel
	} else {
		req.Context = c.surface.PlainText()
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return errors.New("session closed")
	}
	if c.state == StateLoading {
		c.mu.Unlock()
		return ErrBusy
	}
	token := uuid.NewString()
	c.token = token
	c.result = ""
	c.state = StateLoading
	c.mu.Unlock()
	c.notifyChange(StateLoading)

	c.logger.Debug("session: submitted", "mode", mode, "contextLen", len(req.Context))

	go func() {
		text := c.client.Generate(ctx, req)
		c.complete(token, text)
	}()
	return nil
}

// complete resolves the in-flight request identified by token. Stale
// completions (superseded token, closed session, or a state other than
// loading) are swallowed.
func (c *Controller) complete(token, text string) {
	c.mu.Lock()
	if c.closed || token != c.token || c.state != StateLoading {
		c.mu.Unlock()
		c.logger.Debug("session: discarded stale response")
		return
	}
	c.result = text
	if assist.IsSentinel(text) {
		c.state = StateErrored
	} else {
		c.state = StateResponded
	}
	next := c.state
	c.mu.Unlock()
	c.notifyChange(next)
}

// Insert accepts the held result: it is normalized to a well-formed
// fragment, inserted at the cursor, and the session returns to idle.
// Insertion is a content mutation, so the edit event fires. Only valid from
// responded; an errored result can never be inserted.
func (c *Controller) Insert() error {
	c.mu.Lock()
	if c.state != StateResponded {
		c.mu.Unlock()
		return ErrNotResponded
	}
	text := c.normalize(c.result)
	c.result = ""
	c.token = ""
	c.state = StateIdle
	c.mu.Unlock()

	c.surface.InsertAtCursor(text)
	c.surface.Focus()
	if c.notifier != nil {
		c.notifier.NoteEdit()
	}
	c.notifyChange(StateIdle)
	return nil
}

// Discard drops the held result and returns to idle without touching the
// document. Valid from responded or errored; a no-op otherwise.
func (c *Controller) Discard() {
	c.mu.Lock()
	if c.state != StateResponded && c.state != StateErrored {
		c.mu.Unlock()
		return
	}
	c.result = ""
	c.token = ""
	c.state = StateIdle
	c.mu.Unlock()
	c.notifyChange(StateIdle)
}

// Close shuts the session down. Any in-flight completion is swallowed: the
// result is never displayed, even though the underlying request is not
// cancelled.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.result = ""
	c.token = ""
	c.state = StateIdle
	c.mu.Unlock()
}

func (c *Controller) notifyChange(s State) {
	if c.onChange != nil {
		c.onChange(s)
	}
}
