package httpadapter

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/Himanshu-coder007/Ai-Chatbot/internal/adapters/llm"
	"github.com/Himanshu-coder007/Ai-Chatbot/internal/domain"
	"github.com/Himanshu-coder007/Ai-Chatbot/internal/observability"
	"github.com/Himanshu-coder007/Ai-Chatbot/internal/persona"
)

// Server is the completion relay: a stateless handler that resolves the
// persona, composes the prompt, and forwards one request to the model.
// It holds no conversation memory across calls.
type Server struct {
	llm domain.CompletionClient

	// maxUploadMemory bounds the in-memory portion of multipart parsing;
	// larger files spill to disk. The relay contract itself does not cap
	// attachment size, the client does before submitting.
	maxUploadMemory int64
}

func NewServer(client domain.CompletionClient, maxUploadMemory int64) http.Handler {
	s := &Server{
		llm:             client,
		maxUploadMemory: maxUploadMemory,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/api/personas", s.handlePersonas)

	return chainMiddlewares(mux, withCORS, withLogging, withRequestID)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type chatRequest struct {
	Message string `json:"message"`
	Persona string `json:"persona,omitempty"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type personaResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleChat accepts either a JSON body {message, persona} or a
// multipart form with message/persona fields and an optional file part.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	message, personaID, attachment, err := s.decodeChatRequest(r)
	if err != nil {
		badRequest(w, "invalid request body")
		return
	}

	if strings.TrimSpace(message) == "" && attachment == nil {
		badRequest(w, "No message provided")
		return
	}

	// Lenient server-side resolution, independent of whatever the client
	// resolved: unknown ids become the default persona.
	p := persona.Resolve(personaID)

	log := observability.LoggerFromContext(r.Context()).With("persona", p.ID)
	log.Info("chat request", "has_attachment", attachment != nil)

	prompt := llm.BuildPrompt(p, message)

	reply, err := s.llm.GenerateReply(r.Context(), prompt, attachment)
	if err != nil {
		// The internal detail is logged, not leaked to the client.
		log.Error("completion failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Failed to get response from Gemini",
		})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Response: reply})
}

func (s *Server) handlePersonas(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	all := persona.All()
	out := make([]personaResponse, 0, len(all))
	for _, p := range all {
		out = append(out, personaResponse{
			ID:          p.ID,
			Name:        p.DisplayName,
			Description: p.Description,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

// decodeChatRequest pulls message, persona and attachment out of either
// body encoding. A multipart request without a file part is still valid.
func (s *Server) decodeChatRequest(r *http.Request) (string, string, *domain.AttachmentPayload, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(s.maxUploadMemory); err != nil {
			return "", "", nil, err
		}

		message := r.FormValue("message")
		personaID := r.FormValue("persona")

		file, header, err := r.FormFile("file")
		if err == http.ErrMissingFile {
			return message, personaID, nil, nil
		}
		if err != nil {
			return "", "", nil, err
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return "", "", nil, err
		}

		attachment := &domain.AttachmentPayload{
			Name:     header.Filename,
			MIMEType: header.Header.Get("Content-Type"),
			Data:     data,
		}
		return message, personaID, attachment, nil
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", "", nil, err
	}
	return req.Message, req.Persona, nil, nil
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
