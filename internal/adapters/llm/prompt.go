package llm

import "github.com/Himanshu-coder007/Ai-Chatbot/internal/domain"

// BuildPrompt composes the single text block sent to the model: the
// persona's instruction template followed by the user message. Each
// request is context-free; prior turns are never threaded in.
func BuildPrompt(p domain.Persona, userMessage string) string {
	return p.SystemPrompt + "\n\nUser: " + userMessage
}
