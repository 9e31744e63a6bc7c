package editor

import (
	"html"
	"regexp"
	"sync"
)

// EmptyDocument is the markup a surface is initialized to when no prior
// document exists.
const EmptyDocument = "<p><br></p>"

var tagRE = regexp.MustCompile(`<[^>]*>`)

// Buffer is an in-memory Surface for tests and headless embedding. It stores
// the document as a flat markup string with a rune-indexed cursor, keeps an
// undo/redo history of whole-document snapshots, and records formatting
// commands it has no visual rendering for.
type Buffer struct {
	mu        sync.Mutex
	markup    string
	cursor    int // rune offset into markup
	selection string

	history []string
	histPos int // index of the current snapshot in history

	applied []Command // non-undo/redo commands, in order
}

var _ Surface = (*Buffer)(nil)

// NewBuffer returns an empty buffer initialized to an empty paragraph.
func NewBuffer() *Buffer {
	b := &Buffer{}
	b.SetMarkup(EmptyDocument)
	return b
}

// PlainText strips tags and unescapes entities. A <br> inside an otherwise
// empty paragraph contributes nothing, so a fresh buffer reads as "".
func (b *Buffer) PlainText() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return html.UnescapeString(tagRE.ReplaceAllString(b.markup, ""))
}

func (b *Buffer) Markup() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.markup
}

func (b *Buffer) SetMarkup(markup string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.setMarkupLocked(markup)
}

func (b *Buffer) setMarkupLocked(markup string) {
	b.markup = markup
	b.cursor = len([]rune(markup))
	if len(b.history) > 0 {
		// A new edit invalidates any redo tail.
		b.history = b.history[:b.histPos+1]
	}
	b.history = append(b.history, markup)
	b.histPos = len(b.history) - 1
}

// SetSelection marks the given text as selected. The buffer does not track
// ranges; tests set the selection directly.
func (b *Buffer) SetSelection(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.selection = text
}

func (b *Buffer) SelectionText() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selection
}

// SetCursor positions the cursor at the given rune offset, clamped to the
// document bounds.
func (b *Buffer) SetCursor(offset int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n := len([]rune(b.markup)); offset > n {
		offset = n
	}
	if offset < 0 {
		offset = 0
	}
	b.cursor = offset
}

func (b *Buffer) InsertAtCursor(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	runes := []rune(b.markup)
	out := string(runes[:b.cursor]) + text + string(runes[b.cursor:])
	b.setMarkupLocked(out)
	b.cursor = len([]rune(string(runes[:b.cursor]) + text))
}

// ExecCommand applies undo/redo against the snapshot history and records any
// other known command. Unknown commands are no-ops.
func (b *Buffer) ExecCommand(cmd Command, value string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch cmd {
	case CmdUndo:
		if b.histPos == 0 {
			return false
		}
		b.histPos--
		b.markup = b.history[b.histPos]
		b.cursor = len([]rune(b.markup))
		return true
	case CmdRedo:
		if b.histPos >= len(b.history)-1 {
			return false
		}
		b.histPos++
		b.markup = b.history[b.histPos]
		b.cursor = len([]rune(b.markup))
		return true
	}

	if !cmd.Known() {
		return false
	}
	b.applied = append(b.applied, cmd)
	return true
}

// AppliedCommands returns the formatting commands executed so far, in order.
func (b *Buffer) AppliedCommands() []Command {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Command, len(b.applied))
	copy(out, b.applied)
	return out
}

// Focus is a no-op for the headless buffer.
func (b *Buffer) Focus() {}
