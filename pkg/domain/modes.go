package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is the enumerated intent of an assistance request. It determines the
// instruction profile sent to the backend.
type Mode string

const (
	// ModeContinue asks the model to continue the text from where it ends.
	ModeContinue Mode = "continue"
	// ModeSummarize asks for a concise summary of the text.
	ModeSummarize Mode = "summarize"
	// ModeFix asks for grammar and spelling corrections only.
	ModeFix Mode = "fix"
	// ModeTone asks for a more professional, concise rewrite.
	ModeTone Mode = "tone"
	// ModeCustom follows the user's literal instruction.
	ModeCustom Mode = "custom"
)

// ErrPromptRequired is returned when a request's mode has no canned
// instruction to fall back on and the user supplied no prompt.
var ErrPromptRequired = errors.New("prompt required for this mode")

// ErrUnknownMode is returned for a mode outside the enumerated set.
var ErrUnknownMode = errors.New("unknown assistance mode")

// defaultPrompts are the canned task instructions used when the user supplies
// no free-text prompt. Continue and custom have no canned form: continue with
// an empty prompt is a no-op request, and custom is by definition the user's
// own words.
var defaultPrompts = map[Mode]string{
	ModeSummarize: "Summarize the text concisely.",
	ModeFix:       "Fix any grammar and spelling mistakes without changing the meaning.",
	ModeTone:      "Rewrite the text to be more professional and concise.",
}

// Valid reports whether m is one of the enumerated modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeContinue, ModeSummarize, ModeFix, ModeTone, ModeCustom:
		return true
	}
	return false
}

// DefaultPrompt returns the canned task instruction for the mode, or "" when
// the mode requires a user-supplied prompt.
func (m Mode) DefaultPrompt() string { return defaultPrompts[m] }

// AssistanceRequest describes a single generation request: the user's
// free-text prompt (possibly empty), the captured document context, and the
// mode selecting the instruction profile.
type AssistanceRequest struct {
	Prompt  string `json:"prompt"`
	Context string `json:"context"`
	Mode    Mode   `json:"mode"`
}

// Noop reports whether the request must not be dispatched at all: a continue
// request with an empty prompt carries no task.
func (r AssistanceRequest) Noop() bool {
	return r.Mode == ModeContinue && strings.TrimSpace(r.Prompt) == ""
}

// Validate rejects requests that can never be dispatched. A no-op request is
// not an error; callers check Noop separately.
func (r AssistanceRequest) Validate() error {
	if !r.Mode.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMode, r.Mode)
	}
	if r.Mode == ModeCustom && strings.TrimSpace(r.Prompt) == "" {
		return ErrPromptRequired
	}
	return nil
}

// Task returns the instruction text to send as the request payload: the
// user's prompt when present, otherwise the mode's canned instruction.
func (r AssistanceRequest) Task() string {
	if p := strings.TrimSpace(r.Prompt); p != "" {
		return p
	}
	return r.Mode.DefaultPrompt()
}
