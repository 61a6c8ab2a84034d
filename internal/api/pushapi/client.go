package pushapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pwpush/pwpush-cli/internal/model"
)

// Authenticated requests carry the account email and API token in these
// headers. The API has no other authentication mechanism.
const (
	headerUserEmail = "X-User-Email"
	headerUserToken = "X-User-Token"
)

// Client talks to one Password Pusher instance over its JSON API.
//
// The API uses a single-letter path prefix per push kind and a .json
// suffix to select the JSON representation, e.g. GET /p/abc123.json.
type Client struct {
	baseURL    string
	email      string
	token      string
	httpClient *http.Client
}

// New returns a Client for the instance at baseURL. Email and token may
// both be empty for anonymous access.
func New(baseURL, email, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		email:   email,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// createParams is the nested request object for create calls. The API
// wraps it under a kind-specific key (password, file_push, or url).
type createParams struct {
	Payload           string `json:"payload"`
	Note              string `json:"note,omitempty"`
	Passphrase        string `json:"passphrase,omitempty"`
	ExpireAfterDays   *int   `json:"expire_after_days,omitempty"`
	ExpireAfterViews  *int   `json:"expire_after_views,omitempty"`
	DeletableByViewer *bool  `json:"deletable_by_viewer,omitempty"`
	RetrievalStep     *bool  `json:"retrieval_step,omitempty"`
}

// CreatePush creates a new push. File pushes are sent as multipart form
// data, everything else as JSON.
func (c *Client) CreatePush(ctx context.Context, kind model.Kind, input *CreatePushInput) (*Push, error) {
	endpoint := c.endpoint(kind.Prefix() + ".json")

	var (
		body        io.Reader
		contentType string
	)
	if len(input.Files) > 0 {
		b, ct, err := encodeMultipart(kind, input)
		if err != nil {
			return nil, err
		}
		body, contentType = b, ct
	} else {
		params := map[string]createParams{
			kind.ParamKey(): {
				Payload:           input.Payload,
				Note:              input.Note,
				Passphrase:        input.Passphrase,
				ExpireAfterDays:   input.ExpireAfterDays,
				ExpireAfterViews:  input.ExpireAfterViews,
				DeletableByViewer: input.DeletableByViewer,
				RetrievalStep:     input.RetrievalStep,
			},
		}
		encoded, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body, contentType = bytes.NewReader(encoded), "application/json"
	}

	var push Push
	if err := c.do(ctx, http.MethodPost, endpoint, contentType, body, &push); err != nil {
		return nil, err
	}
	return &push, nil
}

// GetPush retrieves a push's metadata by its URL token.
func (c *Client) GetPush(ctx context.Context, kind model.Kind, urlToken string) (*Push, error) {
	var push Push
	endpoint := c.endpoint(kind.Prefix(), url.PathEscape(urlToken)+".json")
	if err := c.do(ctx, http.MethodGet, endpoint, "", nil, &push); err != nil {
		return nil, err
	}
	return &push, nil
}

// PreviewPush retrieves the shareable link for a push.
func (c *Client) PreviewPush(ctx context.Context, kind model.Kind, urlToken string) (*Preview, error) {
	var preview Preview
	endpoint := c.endpoint(kind.Prefix(), url.PathEscape(urlToken), "preview.json")
	if err := c.do(ctx, http.MethodGet, endpoint, "", nil, &preview); err != nil {
		return nil, err
	}
	return &preview, nil
}

// AuditPush retrieves the view log for a push. The service only allows
// this for pushes owned by the authenticated account.
func (c *Client) AuditPush(ctx context.Context, kind model.Kind, urlToken string) (*AuditLog, error) {
	var audit AuditLog
	endpoint := c.endpoint(kind.Prefix(), url.PathEscape(urlToken), "audit.json")
	if err := c.do(ctx, http.MethodGet, endpoint, "", nil, &audit); err != nil {
		return nil, err
	}
	return &audit, nil
}

// ExpirePush invalidates a push before its natural expiration.
func (c *Client) ExpirePush(ctx context.Context, kind model.Kind, urlToken string) (*Push, error) {
	var push Push
	endpoint := c.endpoint(kind.Prefix(), url.PathEscape(urlToken)+".json")
	if err := c.do(ctx, http.MethodDelete, endpoint, "", nil, &push); err != nil {
		return nil, err
	}
	return &push, nil
}

// ListPushes lists the authenticated account's active or expired pushes.
func (c *Client) ListPushes(ctx context.Context, kind model.Kind, expired bool) ([]Push, error) {
	page := "active.json"
	if expired {
		page = "expired.json"
	}

	var pushes []Push
	endpoint := c.endpoint(kind.Prefix(), page)
	if err := c.do(ctx, http.MethodGet, endpoint, "", nil, &pushes); err != nil {
		return nil, err
	}
	return pushes, nil
}

// ShareURL returns the public link a recipient opens to view the push.
// Unlike the API endpoints it carries no .json suffix.
func (c *Client) ShareURL(kind model.Kind, urlToken string) string {
	return c.endpoint(kind.Prefix(), url.PathEscape(urlToken))
}

func (c *Client) endpoint(parts ...string) string {
	return c.baseURL + "/" + strings.Join(parts, "/")
}

func (c *Client) do(ctx context.Context, method, endpoint, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	// Both-or-neither: a lone email or token is never sent.
	if c.email != "" && c.token != "" {
		req.Header.Set(headerUserEmail, c.email)
		req.Header.Set(headerUserToken, c.token)
	}

	slog.Debug("calling Password Pusher API", "method", method, "url", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	slog.Debug("received response", "status", resp.StatusCode, "bytes", len(data))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &RemoteError{StatusCode: resp.StatusCode, Message: remoteMessage(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// remoteMessage extracts a human-readable detail from an error response
// body. The service answers either {"error": "..."} or a field-keyed
// validation object; anything else is passed through truncated.
func remoteMessage(data []byte) string {
	var withError struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &withError); err == nil && withError.Error != "" {
		return withError.Error
	}

	// Truncate on a rune boundary so a multibyte body never yields an
	// invalid UTF-8 error line.
	const maxDetail = 200
	detail := strings.TrimSpace(string(data))
	if len(detail) > maxDetail {
		cut := maxDetail
		for cut > 0 && !utf8.RuneStart(detail[cut]) {
			cut--
		}
		detail = detail[:cut]
	}
	return detail
}

func encodeMultipart(kind model.Kind, input *CreatePushInput) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	param := kind.ParamKey()

	fields := map[string]string{}
	if input.Payload != "" {
		fields[param+"[payload]"] = input.Payload
	}
	if input.Note != "" {
		fields[param+"[note]"] = input.Note
	}
	if input.Passphrase != "" {
		fields[param+"[passphrase]"] = input.Passphrase
	}
	if input.ExpireAfterDays != nil {
		fields[param+"[expire_after_days]"] = strconv.Itoa(*input.ExpireAfterDays)
	}
	if input.ExpireAfterViews != nil {
		fields[param+"[expire_after_views]"] = strconv.Itoa(*input.ExpireAfterViews)
	}
	if input.DeletableByViewer != nil {
		fields[param+"[deletable_by_viewer]"] = strconv.FormatBool(*input.DeletableByViewer)
	}
	if input.RetrievalStep != nil {
		fields[param+"[retrieval_step]"] = strconv.FormatBool(*input.RetrievalStep)
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("failed to encode form field: %w", err)
		}
	}

	for _, f := range input.Files {
		part, err := w.CreateFormFile(param+"[files][]", f.Name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to attach file %s: %w", f.Name, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, "", fmt.Errorf("failed to attach file %s: %w", f.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
