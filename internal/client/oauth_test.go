package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stoik.com/voicedesk/internal/core/domain"
)

func newTokenServer(t *testing.T, refreshCount *atomic.Int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
		assert.Equal(t, "refresh-abc", r.Form.Get("refresh_token"))
		assert.Equal(t, "client-id", r.Form.Get("client_id"))
		assert.Equal(t, "client-secret", r.Form.Get("client_secret"))

		n := refreshCount.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"token-%d","expires_in":3600}`, n)
	}))
	t.Cleanup(server.Close)
	return server
}

func testOAuthConfig(tokenURL string) OAuthConfig {
	return OAuthConfig{
		TokenURL:     tokenURL,
		RefreshToken: "refresh-abc",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
	}
}

func TestToken_RefreshesOnceThenCaches(t *testing.T) {
	var refreshCount atomic.Int32
	server := newTokenServer(t, &refreshCount)
	manager := NewOAuthManager(testOAuthConfig(server.URL))

	ctx := context.Background()

	first, err := manager.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", first)

	second, err := manager.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, int32(1), refreshCount.Load())
}

func TestToken_ConcurrentCallersShareOneRefresh(t *testing.T) {
	var refreshCount atomic.Int32
	server := newTokenServer(t, &refreshCount)
	manager := NewOAuthManager(testOAuthConfig(server.URL))

	ctx := context.Background()
	const callers = 20

	tokens := make([]string, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := manager.Token(ctx)
			assert.NoError(t, err)
			tokens[i] = token
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), refreshCount.Load())
	for _, token := range tokens {
		assert.Equal(t, "token-1", token)
	}
}

func TestForceRefresh_DiscardsCachedToken(t *testing.T) {
	var refreshCount atomic.Int32
	server := newTokenServer(t, &refreshCount)
	manager := NewOAuthManager(testOAuthConfig(server.URL))

	ctx := context.Background()

	first, err := manager.Token(ctx)
	require.NoError(t, err)

	forced, err := manager.ForceRefresh(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first, forced)
	assert.Equal(t, int32(2), refreshCount.Load())

	// Subsequent Token calls reuse the forced token
	cached, err := manager.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, forced, cached)
	assert.Equal(t, int32(2), refreshCount.Load())
}

func TestToken_RefreshFailureSurfacesTypedError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":"invalid_code"}`)
	}))
	t.Cleanup(server.Close)

	manager := NewOAuthManager(testOAuthConfig(server.URL))

	_, err := manager.Token(context.Background())
	require.Error(t, err)

	var refreshErr *domain.AuthRefreshError
	require.True(t, errors.As(err, &refreshErr))
	assert.Equal(t, http.StatusBadRequest, refreshErr.Status)
	assert.Contains(t, refreshErr.Body, "invalid_code")
}
