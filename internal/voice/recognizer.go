// Package voice models live speech-to-text capture as a polymorphic
// capability: an environment either provides a Recognizer or it does
// not, and the rest of the system depends only on the interface.
package voice

import (
	"context"
	"errors"
)

// ErrUnavailable means the runtime has no speech capture capability.
// Callers degrade to a visible notice; text submission is unaffected.
var ErrUnavailable = errors.New("speech capture is not available in this environment")

type EventKind string

const (
	// EventInterim carries a provisional transcription fragment.
	EventInterim EventKind = "interim"
	// EventFinal carries the finalized transcription for an activation.
	EventFinal EventKind = "final"
	// EventFailure reports a capture-device error (recognition failure,
	// permission denial). Recoverable: the next activation starts clean.
	EventFailure EventKind = "failure"
)

type Event struct {
	Kind EventKind
	Text string
	Err  error
}

// Recognizer converts live audio into text events. Per activation the
// stream delivers zero or more interim events, then at most one final
// event, then closes. Starting capture never submits anything.
type Recognizer interface {
	// Start begins one capture activation and returns its event stream.
	Start(ctx context.Context) (<-chan Event, error)
	// Stop ends the current activation; the stream closes without a
	// final event if none was produced yet.
	Stop()
}

// Unsupported is the absent-capability variant of Recognizer.
type Unsupported struct{}

func (Unsupported) Start(ctx context.Context) (<-chan Event, error) {
	return nil, ErrUnavailable
}

func (Unsupported) Stop() {}
