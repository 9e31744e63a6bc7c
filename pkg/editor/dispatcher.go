package editor

// Notifier receives edit events. The autosave scheduler satisfies it.
type Notifier interface {
	NoteEdit()
}

// Dispatcher translates formatting commands into surface operations and
// reports every application as an edit event: a formatting change is a
// content change even when the text itself is untouched.
type Dispatcher struct {
	surface  Surface
	notifier Notifier
}

// NewDispatcher creates a dispatcher for the given surface. notifier may be
// nil when no autosave is wired (e.g. read-only previews).
func NewDispatcher(surface Surface, notifier Notifier) *Dispatcher {
	return &Dispatcher{surface: surface, notifier: notifier}
}

// Apply executes the command on the surface with an optional value argument,
// refocuses the surface, and fires the edit event. A command the surface
// cannot apply is a no-op, but the edit event still fires: the dispatcher
// cannot distinguish "unsupported" from "applied with no visible change".
func (d *Dispatcher) Apply(cmd Command, value string) {
	d.surface.ExecCommand(cmd, value)
	d.surface.Focus()
	if d.notifier != nil {
		d.notifier.NoteEdit()
	}
}
