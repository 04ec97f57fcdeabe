package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-portal/internal/config"
	"github.com/spec-kit/helpdesk-portal/internal/observability"
	apperrors "github.com/spec-kit/helpdesk-portal/pkg/util/errorutil"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(config.BackendConfig{
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
	}, zap.NewNop(), observability.NewMetrics())
	return client, server
}

func TestClientAttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`{}`))
	}))

	ctx := WithBearer(context.Background(), "abc123")
	ctx = WithRequestID(ctx, "req-42")

	var out map[string]any
	require.NoError(t, client.Get(ctx, "/ticket/status", &out))

	assert.Equal(t, "Bearer abc123", gotAuth)
	assert.Equal(t, "req-42", gotReqID)
}

func TestClientOmitsAuthorizationWithoutBearer(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))

	var out map[string]any
	require.NoError(t, client.Get(context.Background(), "/ticket/status", &out))
	assert.Empty(t, gotAuth)
}

func TestClientRunsUnauthorizedHookOn401(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	hookRan := false
	client.SetUnauthorizedHook(func(context.Context) { hookRan = true })

	err := client.Get(context.Background(), "/ticket/queu", nil)

	require.Error(t, err)
	assert.True(t, hookRan)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, "UNAUTHORIZED", de.Code)
}

func TestClientMapsServerErrorsRetryable(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	err := client.Get(context.Background(), "/ticket/status", nil)

	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, "UPSTREAM_ERROR", de.Code)
	assert.True(t, de.Retryable)
	assert.Equal(t, http.StatusBadGateway, de.HTTPStatus)
}

func TestClientMapsClientErrorsNonRetryable(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	err := client.Get(context.Background(), "/ticket/by-ticket/NOPE", nil)

	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, "UPSTREAM_ERROR", de.Code)
	assert.False(t, de.Retryable)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
}

func TestClientMapsUnreachableBackendRetryable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := NewClient(config.BackendConfig{
		BaseURL:        server.URL,
		TimeoutSeconds: 1,
	}, zap.NewNop(), observability.NewMetrics())

	err := client.Get(context.Background(), "/ticket/status", nil)

	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, "UPSTREAM_ERROR", de.Code)
	assert.True(t, de.Retryable)
}

func TestClientRejectsUndecodableBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))

	var out map[string]any
	err := client.Get(context.Background(), "/ticket/status", &out)

	require.Error(t, err)
	assert.Equal(t, "UPSTREAM_SCHEMA", apperrors.ToDomainError(err).Code)
}

func TestPostMultipartCarriesBodyFieldAndFiles(t *testing.T) {
	type received struct {
		body  string
		files map[string][]byte
	}
	var got received

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		got.body = r.FormValue("body")
		got.files = map[string][]byte{}
		for _, header := range r.MultipartForm.File["files"] {
			file, err := header.Open()
			require.NoError(t, err)
			content, err := io.ReadAll(file)
			require.NoError(t, err)
			_ = file.Close()
			got.files[header.Filename] = content
		}
		_, _ = w.Write([]byte(`{"CodTicket":"TCK-9","ID":9}`))
	}))

	files := []Upload{
		{FileName: "screenshot.png", ContentType: "image/png", Content: []byte("png-bytes")},
		{FileName: "log.txt", ContentType: "text/plain", Content: []byte("log-bytes")},
	}

	var created ticketPayload
	err := client.PostMultipart(context.Background(), "/ticket/create",
		createTicketPayload{Title: "Broken laptop", CreatedBy: 7}, files, &created)
	require.NoError(t, err)

	var body createTicketPayload
	require.NoError(t, json.Unmarshal([]byte(got.body), &body))
	assert.Equal(t, "Broken laptop", body.Title)
	assert.Equal(t, 7, body.CreatedBy)

	require.Len(t, got.files, 2)
	assert.Equal(t, []byte("png-bytes"), got.files["screenshot.png"])
	assert.Equal(t, []byte("log-bytes"), got.files["log.txt"])
	assert.Equal(t, "TCK-9", created.CodTicket)
}
