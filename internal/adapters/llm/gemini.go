package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/Himanshu-coder007/Ai-Chatbot/internal/domain"
)

// NoResponseText is returned when the model produced no candidate text.
const NoResponseText = "No response generated"

const defaultModelName = "gemini-2.5-flash"

type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient creates a CompletionClient backed by the Gemini API
// (API-key backend, not Vertex).
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY must be set")
	}
	if modelName == "" {
		modelName = defaultModelName
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: modelName,
	}, nil
}

// GenerateReply implements domain.CompletionClient using the Gemini API.
func (g *GeminiClient) GenerateReply(
	ctx context.Context,
	prompt string,
	attachment *domain.AttachmentPayload,
) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	if attachment != nil {
		parts = append(parts, genai.NewPartFromBytes(attachment.Data, attachment.MIMEType))
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	// Thinking disabled: this is a direct-answer chat surface (without
	// genai.Ptr to avoid generic issues).
	budget := int32(0)

	cfg := &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: &budget,
		},
	}

	res, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := res.Text()
	if text == "" {
		return NoResponseText, nil
	}

	return text, nil
}
