package editor

import "testing"

func TestNewBufferIsEmptyParagraph(t *testing.T) {
	b := NewBuffer()
	if b.Markup() != EmptyDocument {
		t.Errorf("Markup = %q, want %q", b.Markup(), EmptyDocument)
	}
	if b.PlainText() != "" {
		t.Errorf("PlainText = %q, want empty", b.PlainText())
	}
}

func TestPlainTextStripsMarkup(t *testing.T) {
	b := NewBuffer()
	b.SetMarkup("<p>Hello <b>world</b> &amp; friends</p>")
	if got, want := b.PlainText(), "Hello world & friends"; got != want {
		t.Errorf("PlainText = %q, want %q", got, want)
	}
}

func TestInsertAtCursor(t *testing.T) {
	b := NewBuffer()
	b.SetMarkup("Hello world")
	b.SetCursor(5)
	b.InsertAtCursor(" there")
	if got, want := b.Markup(), "Hello there world"; got != want {
		t.Errorf("Markup = %q, want %q", got, want)
	}

	// Cursor advanced past the inserted text.
	b.InsertAtCursor(",")
	if got, want := b.Markup(), "Hello there, world"; got != want {
		t.Errorf("Markup after second insert = %q, want %q", got, want)
	}
}

func TestUndoRedo(t *testing.T) {
	b := NewBuffer()
	b.SetMarkup("<p>one</p>")
	b.SetMarkup("<p>two</p>")

	if !b.ExecCommand(CmdUndo, "") {
		t.Fatal("undo reported no-op")
	}
	if got := b.Markup(); got != "<p>one</p>" {
		t.Errorf("after undo: %q", got)
	}

	if !b.ExecCommand(CmdRedo, "") {
		t.Fatal("redo reported no-op")
	}
	if got := b.Markup(); got != "<p>two</p>" {
		t.Errorf("after redo: %q", got)
	}

	// A new edit invalidates the redo tail.
	b.ExecCommand(CmdUndo, "")
	b.SetMarkup("<p>branch</p>")
	if b.ExecCommand(CmdRedo, "") {
		t.Error("redo after new edit should be a no-op")
	}
}

func TestUnknownCommandIsNoop(t *testing.T) {
	b := NewBuffer()
	if b.ExecCommand(Command("blink"), "") {
		t.Error("unknown command reported as applied")
	}
}

type countingNotifier struct{ edits int }

func (n *countingNotifier) NoteEdit() { n.edits++ }

func TestDispatcherAlwaysNotifies(t *testing.T) {
	b := NewBuffer()
	n := &countingNotifier{}
	d := NewDispatcher(b, n)

	d.Apply(CmdBold, "")
	d.Apply(CmdInsertOrderedList, "")
	d.Apply(Command("blink"), "") // unsupported, still an edit event

	if n.edits != 3 {
		t.Errorf("edit events = %d, want 3", n.edits)
	}
	if got := b.AppliedCommands(); len(got) != 2 || got[0] != CmdBold || got[1] != CmdInsertOrderedList {
		t.Errorf("applied commands = %v", got)
	}
}

func TestDispatcherNilNotifier(t *testing.T) {
	d := NewDispatcher(NewBuffer(), nil)
	d.Apply(CmdItalic, "") // must not panic
}
