// Package gateway is the controller-side HTTP client for the completion
// relay's single POST /api/chat endpoint.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/Himanshu-coder007/Ai-Chatbot/internal/domain"
)

// MaxAttachmentBytes is the client-side ceiling on attached files.
const MaxAttachmentBytes = 5 << 20

var (
	// ErrAttachmentTooLarge means the file exceeds MaxAttachmentBytes.
	ErrAttachmentTooLarge = errors.New("attachment exceeds the 5MB limit")

	// ErrUnsupportedFileType means the file's MIME type is outside the
	// allow-list of image/*, text/* and application/pdf.
	ErrUnsupportedFileType = errors.New("unsupported attachment type")
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a gateway client for the relay at baseURL. When
// httpClient is nil the default client is used; no extra timeout is
// layered on top, failure signaling is left to the transport.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// ValidateAttachment applies the pre-submission checks the relay itself
// does not enforce: a practical size ceiling and a MIME allow-list.
func ValidateAttachment(p *domain.AttachmentPayload) error {
	if p == nil {
		return nil
	}
	if int64(len(p.Data)) > MaxAttachmentBytes {
		return ErrAttachmentTooLarge
	}
	if !allowedMIMEType(p.MIMEType) {
		return ErrUnsupportedFileType
	}
	return nil
}

func allowedMIMEType(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/") ||
		strings.HasPrefix(mimeType, "text/") ||
		mimeType == "application/pdf"
}

// Complete implements domain.CompletionGateway. A non-2xx response is
// returned as a *domain.GatewayError carrying the server's error text.
func (c *Client) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	if err := ValidateAttachment(req.Attachment); err != nil {
		return "", err
	}

	body, contentType, err := encodeRequest(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", body)
	if err != nil {
		return "", fmt.Errorf("building gateway request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("calling completion gateway: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var failure struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(res.Body).Decode(&failure)
		return "", &domain.GatewayError{
			StatusCode: res.StatusCode,
			Message:    failure.Error,
		}
	}

	var success struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(res.Body).Decode(&success); err != nil {
		return "", fmt.Errorf("decoding gateway response: %w", err)
	}

	return success.Response, nil
}

// encodeRequest marshals the request as JSON, or as a multipart form
// when a file rides along.
func encodeRequest(req domain.CompletionRequest) (*bytes.Buffer, string, error) {
	if req.Attachment == nil {
		buf := &bytes.Buffer{}
		payload := map[string]string{
			"message": req.Text,
			"persona": req.PersonaID,
		}
		if err := json.NewEncoder(buf).Encode(payload); err != nil {
			return nil, "", fmt.Errorf("encoding gateway request: %w", err)
		}
		return buf, "application/json", nil
	}

	buf := &bytes.Buffer{}
	form := multipart.NewWriter(buf)

	if err := form.WriteField("message", req.Text); err != nil {
		return nil, "", fmt.Errorf("encoding message field: %w", err)
	}
	if err := form.WriteField("persona", req.PersonaID); err != nil {
		return nil, "", fmt.Errorf("encoding persona field: %w", err)
	}

	// CreateFormFile hardcodes application/octet-stream, so the part
	// header is written by hand to preserve the real MIME type.
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename=%q`, req.Attachment.Name))
	header.Set("Content-Type", req.Attachment.MIMEType)

	part, err := form.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("encoding file part: %w", err)
	}
	if _, err := part.Write(req.Attachment.Data); err != nil {
		return nil, "", fmt.Errorf("writing file part: %w", err)
	}

	if err := form.Close(); err != nil {
		return nil, "", fmt.Errorf("finalizing multipart body: %w", err)
	}

	return buf, form.FormDataContentType(), nil
}
