// Package editor defines the editing surface capability consumed by the
// core, and a headless in-memory implementation of it.
package editor

// Command is a named formatting operation on the editing surface.
type Command string

const (
	CmdBold                Command = "bold"
	CmdItalic              Command = "italic"
	CmdUnderline           Command = "underline"
	CmdJustifyLeft         Command = "justifyLeft"
	CmdJustifyCenter       Command = "justifyCenter"
	CmdJustifyRight        Command = "justifyRight"
	CmdInsertOrderedList   Command = "insertOrderedList"
	CmdInsertUnorderedList Command = "insertUnorderedList"
	CmdUndo                Command = "undo"
	CmdRedo                Command = "redo"
)

// Known reports whether c is one of the enumerated commands.
func (c Command) Known() bool {
	switch c {
	case CmdBold, CmdItalic, CmdUnderline,
		CmdJustifyLeft, CmdJustifyCenter, CmdJustifyRight,
		CmdInsertOrderedList, CmdInsertUnorderedList,
		CmdUndo, CmdRedo:
		return true
	}
	return false
}

// Surface is the abstract rich-text canvas the core operates on. The
// presentation layer implements it; the core never renders anything itself.
type Surface interface {
	// PlainText returns the document's visible text with markup stripped.
	PlainText() string

	// Markup returns the serialized rich-text markup.
	Markup() string

	// SetMarkup replaces the whole document with the given markup.
	SetMarkup(markup string)

	// SelectionText returns the currently selected text, or "" when nothing
	// is selected.
	SelectionText() string

	// InsertAtCursor inserts text at the current cursor position.
	InsertAtCursor(text string)

	// ExecCommand applies a named formatting operation with an optional
	// value argument (e.g. a link URL). A command the surface cannot apply
	// is a no-op, reported by the false return, never an error.
	ExecCommand(cmd Command, value string) bool

	// Focus returns keyboard focus to the surface.
	Focus()
}
