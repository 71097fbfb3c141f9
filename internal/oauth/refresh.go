package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/zitadel/oidc/v3/pkg/oidc"
)

// Refresh exchanges a refresh token for fresh credentials. It performs
// exactly one exchange. A 401 or 403 yields ErrRefreshUnauthorized so the
// host can force a new interactive login instead of retrying.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (Credentials, error) {
	statusCode, body, err := c.postForm(ctx, c.conf.TokenEndpoint(), url.Values{
		"client_id":     {c.conf.Client.ID},
		"grant_type":    {string(oidc.GrantTypeRefreshToken)},
		"refresh_token": {refreshToken},
	})
	if err != nil {
		return Credentials{}, err
	}

	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		return Credentials{}, fmt.Errorf("%w: status %d: %s",
			ErrRefreshUnauthorized, statusCode, strings.TrimSpace(string(body)))
	}

	if !isSuccess(statusCode) {
		return Credentials{}, fmt.Errorf("token refresh failed with status %d: %s",
			statusCode, strings.TrimSpace(string(body)))
	}

	var tokens oidc.AccessTokenResponse
	if err := json.Unmarshal(body, &tokens); err != nil {
		return Credentials{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		return Credentials{}, fmt.Errorf("%w: missing access_token or refresh_token", ErrMalformedResponse)
	}

	c.log(ctx).LogAttrs(ctx, slog.LevelDebug, "refreshed access token",
		slog.Uint64("expires_in", tokens.ExpiresIn),
	)

	return newCredentials(&tokens, c.now()), nil
}
