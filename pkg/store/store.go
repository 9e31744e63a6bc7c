// Package store defines the durable key/value persistence contract for
// documents. Drivers live in subpackages (sqlite, redis).
package store

import (
	"context"
	"errors"

	"github.com/docylit/docylit/pkg/domain"
)

// Persisted key names. These are the only keys a driver may write.
const (
	KeyContent = "docylit-content"
	KeyTitle   = "docylit-title"
)

// ErrNoDocument is returned by Load when no prior document exists under
// either key. Callers initialize the editing surface to an empty paragraph.
var ErrNoDocument = errors.New("no saved document")

// DocumentStore persists the document's content and title as two independent
// string entries. Title writes bypass the autosave debounce and land
// immediately; content writes arrive only through the scheduler. Saves are
// idempotent overwrites with no versioning.
//
// Load never populates DocumentState.LastSaved: the save timestamp is
// process-runtime state owned by the autosave scheduler, and the persisted
// record holds nothing beyond the two keys.
type DocumentStore interface {
	// Load returns the last saved content and title. It returns ErrNoDocument
	// when neither key has ever been written.
	Load(ctx context.Context) (*domain.DocumentState, error)

	// SaveContent overwrites the content entry.
	SaveContent(ctx context.Context, content string) error

	// SaveTitle overwrites the title entry, independently of content.
	SaveTitle(ctx context.Context, title string) error

	// Close releases the driver's resources.
	Close() error
}
