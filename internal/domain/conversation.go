package domain

// Turn represents one unit of the conversation: a user message, an
// assistant reply, or a locally synthesized system notice.
//
// Turns are append-only. Once created they are never mutated or removed;
// the conversation is exactly the ordered sequence of turns.
type Turn struct {
	ID        TurnID
	Speaker   Speaker
	Content   string
	CreatedAt Timestamp

	// Persona is the persona id an assistant turn was produced under.
	// Empty for user and system turns.
	Persona string

	// Attachment describes a file the user attached. Only the descriptor
	// is kept on the turn; the payload travels in the request and is not
	// retained after submission.
	Attachment *Attachment

	// Failed marks a turn that represents an error instead of a genuine
	// model answer.
	Failed bool
}

// Attachment is the request-independent descriptor of an attached file.
type Attachment struct {
	Name      string
	MIMEType  string
	SizeBytes int64
}

// Persona is a named system-prompt template. Exactly one persona is
// active at any time; switching personas never alters past turns.
type Persona struct {
	ID           string
	DisplayName  string
	Description  string
	SystemPrompt string
}
