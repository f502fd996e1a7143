package voice

import (
	"context"
	"sync"
)

// ScriptedRecognizer plays back a fixed transcription: every interim
// fragment in order, then the final text. It stands in for a real
// capture device in tests and demos while honoring the event contract.
type ScriptedRecognizer struct {
	Interims []string
	Final    string
	// FailWith, when set, is emitted as a failure event instead of the
	// final text.
	FailWith error

	mu   sync.Mutex
	stop chan struct{}
}

func (r *ScriptedRecognizer) Start(ctx context.Context) (<-chan Event, error) {
	r.mu.Lock()
	r.stop = make(chan struct{})
	stop := r.stop
	r.mu.Unlock()

	events := make(chan Event)

	go func() {
		defer close(events)

		emit := func(ev Event) bool {
			// A stop that already happened wins over a pending send.
			select {
			case <-stop:
				return false
			case <-ctx.Done():
				return false
			default:
			}
			select {
			case events <- ev:
				return true
			case <-stop:
				return false
			case <-ctx.Done():
				return false
			}
		}

		for _, text := range r.Interims {
			if !emit(Event{Kind: EventInterim, Text: text}) {
				return
			}
		}

		if r.FailWith != nil {
			emit(Event{Kind: EventFailure, Err: r.FailWith})
			return
		}

		emit(Event{Kind: EventFinal, Text: r.Final})
	}()

	return events, nil
}

func (r *ScriptedRecognizer) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stop != nil {
		select {
		case <-r.stop:
		default:
			close(r.stop)
		}
	}
}
