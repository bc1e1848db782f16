// Package recording captures and replays timeline input sessions.
//
// A Recording is the ordered sequence of inputs one engine instance received
// (scroll offsets, navigation commands, resizes) with timestamps relative
// to the start of the session. Recordings are plain local JSON files; there
// is no server-side concern.
//
// # Usage
//
// Record inputs as they happen:
//
//	rec := recording.New(cfg, len(items))
//	rec.Append(recording.Input{Kind: recording.KindScroll, Offset: -500})
//
// Persist and replay later:
//
//	store, err := recording.NewFileStore("")
//	store.Save(rec)
//	loaded, err := store.Load(rec.ID)
package recording

import (
	"time"

	"github.com/google/uuid"

	"github.com/tracklinehq/trackline/pkg/timeline"
)

// Input kinds.
const (
	KindScroll = "scroll"
	KindResize = "resize"
	KindNext   = "next"
	KindPrev   = "prev"
	KindGoTo   = "goto"
)

// Input is one recorded trigger or command.
type Input struct {
	// At is the offset from the start of the session.
	At time.Duration `json:"at"`

	// Kind is one of the Kind constants.
	Kind string `json:"kind"`

	// Offset is the sticky-top scroll position for scroll inputs.
	Offset float64 `json:"offset,omitempty"`

	// Index is the target index for goto inputs.
	Index int `json:"index,omitempty"`

	// Viewport is the new viewport for resize inputs.
	Viewport timeline.Viewport `json:"viewport,omitempty"`
}

// Recording is one captured input session for a timeline instance.
type Recording struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Config    timeline.Config `json:"config"`
	ItemCount int             `json:"item_count"`
	Inputs    []Input         `json:"inputs"`

	start time.Time
}

// New creates an empty recording for an engine driving itemCount items
// under the given configuration.
func New(cfg timeline.Config, itemCount int) *Recording {
	now := time.Now()
	return &Recording{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Config:    cfg,
		ItemCount: itemCount,
		start:     now,
	}
}

// Append adds an input, stamping it with the elapsed session time if the
// caller left At zero.
func (r *Recording) Append(in Input) {
	if in.At == 0 && !r.start.IsZero() {
		in.At = time.Since(r.start)
	}
	r.Inputs = append(r.Inputs, in)
}

// Len returns the number of recorded inputs.
func (r *Recording) Len() int { return len(r.Inputs) }

// Duration returns the timestamp of the last input, or zero for an empty
// recording.
func (r *Recording) Duration() time.Duration {
	if len(r.Inputs) == 0 {
		return 0
	}
	return r.Inputs[len(r.Inputs)-1].At
}
