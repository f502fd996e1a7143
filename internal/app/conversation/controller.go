package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Himanshu-coder007/Ai-Chatbot/internal/domain"
	"github.com/Himanshu-coder007/Ai-Chatbot/internal/observability"
	"github.com/Himanshu-coder007/Ai-Chatbot/internal/persona"
)

// fallbackErrorText is shown when a gateway failure carries no message.
const fallbackErrorText = "Sorry, I encountered an error. Please try again."

var (
	// ErrBusy means a request is already outstanding. Submissions made
	// while busy are not queued; the caller must wait and resubmit.
	ErrBusy = errors.New("a request is already in flight")

	// ErrEmptySubmission means there was nothing to send: no text and
	// no attachment.
	ErrEmptySubmission = errors.New("nothing to submit")
)

// Controller owns the conversation state: the ordered turn history, the
// single in-flight flag, and the active persona. All mutation goes
// through Submit and SwitchPersona; history only ever grows.
type Controller struct {
	mu      sync.Mutex
	gateway domain.CompletionGateway
	store   domain.TurnStore

	active  domain.Persona
	pending bool

	now   func() time.Time
	newID func() domain.TurnID
}

func New(gateway domain.CompletionGateway, store domain.TurnStore) *Controller {
	return &Controller{
		gateway: gateway,
		store:   store,
		active:  persona.Resolve(persona.DefaultID),
		now:     time.Now,
		newID: func() domain.TurnID {
			return domain.TurnID(uuid.NewString())
		},
	}
}

// Submit runs one full exchange: it appends the user turn, issues the
// gateway call, and appends either the assistant reply or a failed turn.
//
// The user turn is appended optimistically and is never rolled back; a
// gateway failure only adds an error turn alongside it. At most one
// request is outstanding at a time: submissions while pending return
// ErrBusy and leave the history untouched. Callers treat ErrBusy and
// ErrEmptySubmission as silent no-ops.
func (c *Controller) Submit(ctx context.Context, text string, payload *domain.AttachmentPayload) error {
	text = strings.TrimSpace(text)

	c.mu.Lock()
	if text == "" && payload == nil {
		c.mu.Unlock()
		return ErrEmptySubmission
	}
	if c.pending {
		c.mu.Unlock()
		return ErrBusy
	}

	// The persona is captured here, at dispatch time. A switch while the
	// request is outstanding does not re-attribute the reply.
	active := c.active
	c.pending = true

	userTurn := &domain.Turn{
		ID:         c.newID(),
		Speaker:    domain.SpeakerUser,
		Content:    text,
		CreatedAt:  c.now(),
		Attachment: payload.Descriptor(),
	}
	if err := c.store.Append(userTurn); err != nil {
		c.pending = false
		c.mu.Unlock()
		return fmt.Errorf("appending user turn: %w", err)
	}
	c.mu.Unlock()

	log := observability.LoggerFromContext(ctx).With("persona", active.ID)
	log.Info("submitting user turn", "has_attachment", payload != nil)

	// The gateway call runs without the state lock so reads and persona
	// switches stay responsive while the request is outstanding. There is
	// no cancellation and no controller-side timeout; the transport's own
	// failure signaling decides when this returns.
	reply, err := c.gateway.Complete(ctx, domain.CompletionRequest{
		Text:       text,
		PersonaID:  active.ID,
		Attachment: payload,
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = false

	if err != nil {
		msg := fallbackErrorText
		var gwErr *domain.GatewayError
		if errors.As(err, &gwErr) && gwErr.Message != "" {
			msg = gwErr.Message
		}
		log.Error("gateway call failed", "error", err)

		return c.store.Append(&domain.Turn{
			ID:        c.newID(),
			Speaker:   domain.SpeakerAssistant,
			Content:   msg,
			CreatedAt: c.now(),
			Failed:    true,
		})
	}

	log.Info("assistant turn received")

	return c.store.Append(&domain.Turn{
		ID:        c.newID(),
		Speaker:   domain.SpeakerAssistant,
		Content:   reply,
		CreatedAt: c.now(),
		Persona:   active.ID,
	})
}

// SwitchPersona changes the persona applied to subsequent requests and
// appends a system turn announcing the switch. Unknown ids resolve to
// the default persona. An in-flight request is unaffected.
func (c *Controller) SwitchPersona(ctx context.Context, id string) (domain.Persona, error) {
	p := persona.Resolve(id)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.active = p

	observability.LoggerFromContext(ctx).Info("persona switched", "persona", p.ID)

	err := c.store.Append(&domain.Turn{
		ID:        c.newID(),
		Speaker:   domain.SpeakerSystem,
		Content:   fmt.Sprintf("Switched to %s mode. How can I help you?", p.DisplayName),
		CreatedAt: c.now(),
	})
	if err != nil {
		return p, fmt.Errorf("appending persona switch notice: %w", err)
	}
	return p, nil
}

// Turns returns a snapshot of the conversation in append order.
func (c *Controller) Turns() ([]*domain.Turn, error) {
	return c.store.Turns(0)
}

func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

func (c *Controller) ActivePersona() domain.Persona {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}
