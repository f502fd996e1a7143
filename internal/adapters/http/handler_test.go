package httpadapter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "github.com/Himanshu-coder007/Ai-Chatbot/internal/adapters/http"
	"github.com/Himanshu-coder007/Ai-Chatbot/internal/adapters/llm"
	"github.com/Himanshu-coder007/Ai-Chatbot/internal/domain"
)

// recordingClient captures the composed prompt and attachment.
type recordingClient struct {
	reply      string
	err        error
	prompt     string
	attachment *domain.AttachmentPayload
}

func (c *recordingClient) GenerateReply(ctx context.Context, prompt string, attachment *domain.AttachmentPayload) (string, error) {
	c.prompt = prompt
	c.attachment = attachment
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

func newTestServer(t *testing.T, client domain.CompletionClient) http.Handler {
	t.Helper()
	return httpadapter.NewServer(client, 10<<20)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, llm.NewMockClient())
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestChatJSON(t *testing.T) {
	srv := newTestServer(t, &recordingClient{reply: "Hi there!"})

	body := []byte(`{"message":"Hello","persona":"default"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Response != "Hi there!" {
		t.Fatalf("expected relayed reply, got %q", resp.Response)
	}
}

func TestChatMissingMessage(t *testing.T) {
	srv := newTestServer(t, llm.NewMockClient())

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No message provided") {
		t.Fatalf("unexpected error body: %s", w.Body.String())
	}
}

func TestChatUpstreamFailure(t *testing.T) {
	srv := newTestServer(t, &recordingClient{err: errors.New("credential missing")})

	body := []byte(`{"message":"Hello"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	// Internal detail must not leak.
	if resp.Error != "Failed to get response from Gemini" {
		t.Fatalf("unexpected error text: %q", resp.Error)
	}
}

func TestChatUnknownPersonaFallsBackToDefault(t *testing.T) {
	client := &recordingClient{reply: "ok"}
	srv := newTestServer(t, client)

	body := []byte(`{"message":"Hello","persona":"unknown-xyz"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.HasPrefix(client.prompt, "You are a helpful, friendly assistant.") {
		t.Fatalf("expected default persona instructions, got %q", client.prompt)
	}
	if !strings.HasSuffix(client.prompt, "User: Hello") {
		t.Fatalf("expected the user message at the end, got %q", client.prompt)
	}
}

func TestChatMultipartWithFile(t *testing.T) {
	client := &recordingClient{reply: "got it"}
	srv := newTestServer(t, client)

	buf := &bytes.Buffer{}
	form := multipart.NewWriter(buf)
	_ = form.WriteField("message", "What is in this file?")
	_ = form.WriteField("persona", "career-coach")
	part, err := form.CreateFormFile("file", "resume.txt")
	if err != nil {
		t.Fatalf("creating file part: %v", err)
	}
	if _, err := part.Write([]byte("ten years of Go")); err != nil {
		t.Fatalf("writing file part: %v", err)
	}
	if err := form.Close(); err != nil {
		t.Fatalf("closing form: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/chat", buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if client.attachment == nil {
		t.Fatal("expected the file to reach the completion client")
	}
	if client.attachment.Name != "resume.txt" {
		t.Fatalf("unexpected attachment name: %q", client.attachment.Name)
	}
	if string(client.attachment.Data) != "ten years of Go" {
		t.Fatalf("unexpected attachment data: %q", client.attachment.Data)
	}
	if !strings.HasPrefix(client.prompt, "You are a professional career coach.") {
		t.Fatalf("expected career coach instructions, got %q", client.prompt)
	}
}

func TestPersonasEndpoint(t *testing.T) {
	srv := newTestServer(t, llm.NewMockClient())
	req := httptest.NewRequest(http.MethodGet, "/api/personas", nil)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var personas []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &personas); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(personas) != 5 {
		t.Fatalf("expected 5 personas, got %d", len(personas))
	}
	if personas[0].ID != "default" || personas[0].Name != "General Assistant" {
		t.Fatalf("unexpected first persona: %+v", personas[0])
	}
}

func TestChatRejectsNonPOST(t *testing.T) {
	srv := newTestServer(t, llm.NewMockClient())
	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}
