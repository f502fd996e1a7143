// Package persona holds the fixed set of selectable chat personas and
// their system-prompt templates.
package persona

import "github.com/Himanshu-coder007/Ai-Chatbot/internal/domain"

// DefaultID is the persona every unknown or empty id resolves to.
const DefaultID = "default"

var personas = []domain.Persona{
	{
		ID:          DefaultID,
		DisplayName: "General Assistant",
		Description: "General purpose assistant for all your questions",
		SystemPrompt: "You are a helpful, friendly assistant. Provide clear, concise, " +
			"and accurate responses to the user's queries.",
	},
	{
		ID:          "career-coach",
		DisplayName: "Career Coach",
		Description: "Get career guidance and professional advice",
		SystemPrompt: "You are a professional career coach. Provide guidance on career " +
			"development, job searching, skill improvement, and professional growth. " +
			"Be supportive, practical, and offer actionable advice.",
	},
	{
		ID:          "event-planner",
		DisplayName: "Event Planner",
		Description: "Plan your events and celebrations",
		SystemPrompt: "You are an experienced event planner. Help users with event ideas, " +
			"organization tips, budgeting, vendor selection, timelines, and " +
			"problem-solving for events of all types.",
	},
	{
		ID:          "interviewer",
		DisplayName: "Interviewer",
		Description: "Practice interview questions and techniques",
		SystemPrompt: "You are a hiring manager conducting a job interview. Ask relevant " +
			"questions based on the user's field, evaluate responses, and provide " +
			"constructive feedback. Adapt to different roles and seniority levels.",
	},
	{
		ID:          "health-expert",
		DisplayName: "Health Expert",
		Description: "Get health and wellness advice",
		SystemPrompt: "You are a knowledgeable health and wellness expert. Provide " +
			"evidence-based information on nutrition, exercise, mental health, and " +
			"general wellness. Always recommend consulting healthcare professionals " +
			"for medical issues.",
	},
}

var byID = func() map[string]domain.Persona {
	m := make(map[string]domain.Persona, len(personas))
	for _, p := range personas {
		m[p.ID] = p
	}
	return m
}()

// All returns every registered persona in selector order.
func All() []domain.Persona {
	out := make([]domain.Persona, len(personas))
	copy(out, personas)
	return out
}

// Known reports whether id names a registered persona.
func Known(id string) bool {
	_, ok := byID[id]
	return ok
}

// Resolve maps a persona id to its definition. Resolution is lenient:
// unknown or empty ids fall back to the default persona, never an error.
// Both the controller and the relay resolve independently, so an
// unvalidated value on either side still defaults safely.
func Resolve(id string) domain.Persona {
	if p, ok := byID[id]; ok {
		return p
	}
	return byID[DefaultID]
}
