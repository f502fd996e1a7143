package llm

import (
	"context"
	"fmt"

	"github.com/Himanshu-coder007/Ai-Chatbot/internal/domain"
)

// MockClient is a canned CompletionClient for dev mode and tests.
type MockClient struct {
	// Reply, when set, is returned verbatim. Err, when set, wins.
	Reply string
	Err   error
}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) GenerateReply(ctx context.Context, prompt string, attachment *domain.AttachmentPayload) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.Reply != "" {
		return m.Reply, nil
	}
	if attachment != nil {
		return fmt.Sprintf("I received your file %q. What would you like to know about it?", attachment.Name), nil
	}
	return "I hear you. Tell me more about that.", nil
}
