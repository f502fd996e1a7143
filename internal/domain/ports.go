package domain

import (
	"context"
	"fmt"
)

// CompletionRequest is what the conversation controller hands to the
// gateway for one turn. Each request is self-contained: prior turns are
// not threaded in and the gateway keeps no conversation memory.
type CompletionRequest struct {
	Text       string
	PersonaID  string
	Attachment *AttachmentPayload
}

// AttachmentPayload carries the actual file bytes at request time.
type AttachmentPayload struct {
	Name     string
	MIMEType string
	Data     []byte
}

func (p *AttachmentPayload) Descriptor() *Attachment {
	if p == nil {
		return nil
	}
	return &Attachment{
		Name:      p.Name,
		MIMEType:  p.MIMEType,
		SizeBytes: int64(len(p.Data)),
	}
}

// CompletionGateway is the controller-side port to the completion relay.
// It is stateless across calls and returns either the extracted response
// text or an error (a *GatewayError when the relay reported one).
type CompletionGateway interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionClient is the relay-side port to the generative model.
// The prompt is the fully composed text (persona instructions + user
// message); an optional attachment is inlined alongside it.
type CompletionClient interface {
	GenerateReply(ctx context.Context, prompt string, attachment *AttachmentPayload) (string, error)
}

// TurnStore holds the ordered turn history for the active session.
type TurnStore interface {
	Append(turn *Turn) error
	Turns(limit int) ([]*Turn, error)
}

// GatewayError is a failure reported by the completion relay, carrying
// the transport status and the server's error text.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("completion gateway: %s (status %d)", e.Message, e.StatusCode)
}
