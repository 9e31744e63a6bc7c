package domain

import "time"

// DocumentState is the single document owned by an editing session: a title,
// the serialized rich-text markup, and the time of the last successful save.
// A zero LastSaved means the document has never been persisted.
type DocumentState struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	LastSaved time.Time `json:"last_saved,omitempty"`
}

// Saved reports whether the document has been persisted at least once.
func (d DocumentState) Saved() bool { return !d.LastSaved.IsZero() }

// TextStats holds counts derived from the document's visible text. The values
// are recomputed after every content mutation, never stored.
type TextStats struct {
	Words      int `json:"words"`
	Characters int `json:"characters"`
}

// Chunk is one incremental unit of a streaming generation response. A chunk
// with Err set carries a failure notice in Text and terminates the stream;
// no further chunks follow it.
type Chunk struct {
	Text string `json:"text"`
	Err  bool   `json:"err,omitempty"`
}
