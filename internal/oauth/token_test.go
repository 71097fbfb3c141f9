package oauth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kimicode/kimi-auth/internal/oauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		body       string
		check      func(t *testing.T, client *oauth.Client)
	}{
		{
			"token issued",
			http.StatusOK,
			`{"access_token": "at1", "refresh_token": "rt1", "expires_in": 3600, "scope": "openid", "token_type": "Bearer"}`,
			func(t *testing.T, client *oauth.Client) {
				t.Helper()

				tokens, err := client.PollToken(t.Context(), "dc1")
				require.NoError(t, err)
				require.NotNil(t, tokens)
				assert.Equal(t, "at1", tokens.AccessToken)
				assert.Equal(t, "rt1", tokens.RefreshToken)
				assert.Equal(t, uint64(3600), tokens.ExpiresIn)
			},
		},
		{
			"missing refresh token",
			http.StatusOK,
			`{"access_token": "at1", "expires_in": 3600}`,
			func(t *testing.T, client *oauth.Client) {
				t.Helper()

				_, err := client.PollToken(t.Context(), "dc1")
				require.ErrorIs(t, err, oauth.ErrMalformedResponse)
			},
		},
		{
			"authorization pending",
			http.StatusBadRequest,
			`{"error": "authorization_pending"}`,
			func(t *testing.T, client *oauth.Client) {
				t.Helper()

				tokens, err := client.PollToken(t.Context(), "dc1")
				require.NoError(t, err)
				assert.Nil(t, tokens)
			},
		},
		{
			"expired device code",
			http.StatusBadRequest,
			`{"error": "expired_token"}`,
			func(t *testing.T, client *oauth.Client) {
				t.Helper()

				_, err := client.PollToken(t.Context(), "dc1")
				require.ErrorIs(t, err, oauth.ErrDeviceCodeExpired)
			},
		},
		{
			"access denied",
			http.StatusBadRequest,
			`{"error": "access_denied", "error_description": "user rejected the request"}`,
			func(t *testing.T, client *oauth.Client) {
				t.Helper()

				_, err := client.PollToken(t.Context(), "dc1")
				require.Error(t, err)
				require.NotErrorIs(t, err, oauth.ErrDeviceCodeExpired)
				assert.Contains(t, err.Error(), "user rejected the request")
			},
		},
		{
			"unexpected status",
			http.StatusServiceUnavailable,
			`upstream unavailable`,
			func(t *testing.T, client *oauth.Client) {
				t.Helper()

				_, err := client.PollToken(t.Context(), "dc1")
				require.Error(t, err)
				assert.Contains(t, err.Error(), "503")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/oauth/token", r.URL.Path)

				require.NoError(t, r.ParseForm())
				assert.Equal(t, "kimi-cli", r.PostForm.Get("client_id"))
				assert.Equal(t, "dc1", r.PostForm.Get("device_code"))
				assert.Equal(t, "urn:ietf:params:oauth:grant-type:device_code", r.PostForm.Get("grant_type"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.statusCode)
				_, _ = w.Write([]byte(tc.body))
			}))
			t.Cleanup(server.Close)

			tc.check(t, testClient(t, server.URL))
		})
	}
}
