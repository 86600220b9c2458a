package graph

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticTokenProvider returns a fixed token for tests.
type staticTokenProvider struct {
	token string
	err   error
}

func (p *staticTokenProvider) GetToken(_ context.Context) (string, error) {
	return p.token, p.err
}

// testConfig removes the request pacing so tests run instantly.
func testConfig(baseURL string) Config {
	return Config{
		BaseURL:           baseURL,
		RequestsPerSecond: 1000,
		BurstSize:         1000,
	}
}

func TestPageContent_SendsBearerToken(t *testing.T) {
	var gotAuth, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		assert.Equal(t, "/me/onenote/pages/p-1/content", r.URL.Path)
		fmt.Fprint(w, "<html><body>hi</body></html>")
	}))
	defer srv.Close()

	c := NewClient(&staticTokenProvider{token: "tok-123"}, testConfig(srv.URL))

	content, err := c.PageContent(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, "<html><body>hi</body></html>", content)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
}

func TestPageContent_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, "throttled")
	}))
	defer srv.Close()

	c := NewClient(&staticTokenProvider{token: "tok"}, testConfig(srv.URL))

	_, err := c.PageContent(context.Background(), "p-1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, "throttled", apiErr.Body)
	assert.True(t, IsThrottled(err))
	assert.False(t, IsUnauthorized(err))
}

func TestPageContent_TokenProviderFailure(t *testing.T) {
	c := NewClient(&staticTokenProvider{err: errors.New("no account")}, testConfig("http://127.0.0.1:0"))

	_, err := c.PageContent(context.Background(), "p-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get token")
}

func TestIsUnauthorized(t *testing.T) {
	err := error(&APIError{StatusCode: 401, Body: "expired", URL: "u"})
	assert.True(t, IsUnauthorized(err))
	assert.False(t, IsThrottled(err))
	assert.False(t, IsUnauthorized(errors.New("other")))
}
