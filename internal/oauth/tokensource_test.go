package oauth_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kimicode/kimi-auth/internal/credstore"
	"github.com/kimicode/kimi-auth/internal/oauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenSource(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "at-new", "refresh_token": "rt-new", "expires_in": 3600}`))
	}))
	t.Cleanup(server.Close)

	client := testClient(t, server.URL)

	store := credstore.NewInMemory("test-secret", 0)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	ctx := t.Context()

	require.NoError(t, store.Set(ctx, "default", oauth.Credentials{
		AccessToken:  "at-valid",
		RefreshToken: "rt-valid",
		ExpiresAt:    time.Now().Add(time.Hour).UnixMilli(),
	}))

	tokenSource := client.TokenSource(ctx, "default", store)

	// Valid credentials are served from the store without a refresh.
	token, err := tokenSource.Token()
	require.NoError(t, err)
	assert.Equal(t, "at-valid", token.AccessToken)
	assert.EqualValues(t, 0, requests.Load())

	// Expired credentials trigger a refresh and a store update.
	require.NoError(t, store.Set(ctx, "default", oauth.Credentials{
		AccessToken:  "at-expired",
		RefreshToken: "rt-old",
		ExpiresAt:    time.Now().Add(-time.Hour).UnixMilli(),
	}))

	token, err = tokenSource.Token()
	require.NoError(t, err)
	assert.Equal(t, "at-new", token.AccessToken)
	assert.EqualValues(t, 1, requests.Load())

	stored, err := store.Get(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, "rt-new", stored.RefreshToken)
}

func TestTokenSourceUnauthorized(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": "invalid_grant"}`, http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	client := testClient(t, server.URL)

	store := credstore.NewInMemory("test-secret", 0)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	ctx := t.Context()

	require.NoError(t, store.Set(ctx, "default", oauth.Credentials{
		AccessToken:  "at-expired",
		RefreshToken: "rt-old",
		ExpiresAt:    time.Now().Add(-time.Hour).UnixMilli(),
	}))

	_, err := client.TokenSource(ctx, "default", store).Token()
	require.ErrorIs(t, err, oauth.ErrRefreshUnauthorized)
}

func TestTokenSourceMissingCredentials(t *testing.T) {
	t.Parallel()

	client := testClient(t, "https://auth.invalid")

	store := credstore.NewInMemory("test-secret", 0)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	_, err := client.TokenSource(t.Context(), "default", store).Token()
	require.ErrorIs(t, err, credstore.ErrNotExists)
}
