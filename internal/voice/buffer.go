package voice

import (
	"context"
	"strings"
	"sync"
)

// Buffer is the pending input text that capture feeds into. It is a
// separate piece of state from the turn history: finalized speech lands
// here and only leaves when the user actually submits.
type Buffer struct {
	mu      sync.Mutex
	pending string
	interim string
	notice  string
}

// Capture runs one recognizer activation against the buffer and returns
// when the event stream closes. A missing capability surfaces as the
// returned error; capture-device failures inside the stream become a
// transient notice instead.
func (b *Buffer) Capture(ctx context.Context, r Recognizer) error {
	b.mu.Lock()
	// A fresh activation clears the previous attempt's notice.
	b.notice = ""
	b.interim = ""
	b.mu.Unlock()

	events, err := r.Start(ctx)
	if err != nil {
		return err
	}

	for ev := range events {
		b.apply(ev)
	}

	b.mu.Lock()
	b.interim = ""
	b.mu.Unlock()
	return nil
}

func (b *Buffer) apply(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch ev.Kind {
	case EventInterim:
		b.interim = ev.Text
	case EventFinal:
		if ev.Text != "" {
			if b.pending != "" {
				b.pending += " "
			}
			b.pending += ev.Text
		}
	case EventFailure:
		if ev.Err != nil {
			b.notice = ev.Err.Error()
		} else {
			b.notice = "speech capture failed"
		}
	}
}

// Append adds typed text to the pending input alongside whatever
// capture has produced.
func (b *Buffer) Append(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pending != "" {
		b.pending += " "
	}
	b.pending += text
}

// Take empties the buffer and returns its content, for submission.
func (b *Buffer) Take() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.pending
	b.pending = ""
	return out
}

func (b *Buffer) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pending
}

// Interim returns the provisional fragment of an active capture.
func (b *Buffer) Interim() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.interim
}

// Notice returns the last capture failure, empty when none. It clears
// on the next capture activation, not on read.
func (b *Buffer) Notice() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.notice
}
