package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/zitadel/oidc/v3/pkg/oidc"
)

// PollToken performs a single token-exchange attempt for the given device
// code. It returns (nil, nil) while the authorization is still pending,
// ErrDeviceCodeExpired once the device code is no longer valid and a token
// response when the user approved the authorization. It never retries.
func (c *Client) PollToken(ctx context.Context, deviceCode string) (*oidc.AccessTokenResponse, error) {
	statusCode, body, err := c.postForm(ctx, c.conf.TokenEndpoint(), url.Values{
		"client_id":   {c.conf.Client.ID},
		"device_code": {deviceCode},
		"grant_type":  {string(oidc.GrantTypeDeviceCode)},
	})
	if err != nil {
		return nil, err
	}

	switch {
	case isSuccess(statusCode):
		var tokens oidc.AccessTokenResponse
		if err := json.Unmarshal(body, &tokens); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}

		if tokens.AccessToken == "" || tokens.RefreshToken == "" {
			return nil, fmt.Errorf("%w: missing access_token or refresh_token", ErrMalformedResponse)
		}

		return &tokens, nil
	case statusCode == http.StatusBadRequest:
		var oidcErr oidc.Error
		if err := json.Unmarshal(body, &oidcErr); err != nil {
			return nil, fmt.Errorf("token endpoint returned status %d: %s",
				statusCode, strings.TrimSpace(string(body)))
		}

		switch oidcErr.ErrorType {
		case oidc.AuthorizationPending:
			return nil, nil
		case oidc.ExpiredToken:
			return nil, ErrDeviceCodeExpired
		default:
			return nil, fmt.Errorf("token exchange failed: %w", &oidcErr)
		}
	default:
		return nil, fmt.Errorf("token endpoint returned status %d: %s",
			statusCode, strings.TrimSpace(string(body)))
	}
}
