package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-portal/internal/config"
	"github.com/spec-kit/helpdesk-portal/internal/observability"
	apperrors "github.com/spec-kit/helpdesk-portal/pkg/util/errorutil"
)

type contextKey int

const (
	bearerKey contextKey = iota
	requestIDKey
)

// WithBearer attaches the caller's bearer token to the context. Every
// outgoing backend request carries it when present.
func WithBearer(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerKey, token)
}

// BearerFromContext extracts the bearer token, if any.
func BearerFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(bearerKey).(string)
	return token, ok && token != ""
}

// WithRequestID attaches the portal request id for upstream correlation.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the request id, if any.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}

// UnauthorizedHook runs whenever the backend answers 401, so the
// session layer can clear the stored token before the error surfaces.
type UnauthorizedHook func(ctx context.Context)

// Client is the configured request client for the remote helpdesk API.
type Client struct {
	http           *http.Client
	baseURL        string
	logger         *zap.Logger
	metrics        *observability.Metrics
	onUnauthorized UnauthorizedHook
}

// NewClient builds a client against the configured backend base URL.
func NewClient(cfg config.BackendConfig, logger *zap.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout()},
		baseURL: cfg.BaseURL,
		logger:  logger,
		metrics: metrics,
	}
}

// SetUnauthorizedHook registers the 401 interceptor. Wired after the
// session store exists; nil disables interception.
func (c *Client) SetUnauthorizedHook(hook UnauthorizedHook) {
	c.onUnauthorized = hook
}

// Get issues a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

// PostJSON issues a POST with a JSON body.
func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.do(ctx, http.MethodPost, path, "application/json", bytes.NewReader(encoded), out)
}

// PutJSON issues a PUT with a JSON body.
func (c *Client) PutJSON(ctx context.Context, path string, body, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.do(ctx, http.MethodPut, path, "application/json", bytes.NewReader(encoded), out)
}

// Upload is one file attached to a multipart request.
type Upload struct {
	FileName    string
	ContentType string
	Content     []byte
}

// PostMultipart issues a POST carrying a JSON document in the "body"
// field and attachments in repeated "files" fields, matching the
// backend's ticket creation contract.
func (c *Client) PostMultipart(ctx context.Context, path string, payload any, files []Upload, out any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("body", string(encoded)); err != nil {
		return apperrors.NewInternalError(err)
	}
	for _, file := range files {
		part, err := writer.CreateFormFile("files", file.FileName)
		if err != nil {
			return apperrors.NewInternalError(err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return apperrors.NewInternalError(err)
		}
	}
	if err := writer.Close(); err != nil {
		return apperrors.NewInternalError(err)
	}

	return c.do(ctx, http.MethodPost, path, writer.FormDataContentType(), &buf, out)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token, ok := BearerFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if reqID, ok := RequestIDFromContext(ctx); ok {
		req.Header.Set("X-Request-ID", reqID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("helpdesk API unreachable", zap.String("path", path), zap.Error(err))
		return apperrors.NewUpstreamError("helpdesk API unreachable", 0, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	c.metrics.RecordUpstream(path, resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return apperrors.NewUnauthorized("session rejected by helpdesk API")
	}
	if resp.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("helpdesk API error",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", snippet))
		return apperrors.NewUpstreamError(
			fmt.Sprintf("helpdesk API returned %d", resp.StatusCode), resp.StatusCode, nil)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewUpstreamSchemaError("unexpected response body", map[string]any{
			"path": path,
		})
	}
	return nil
}
