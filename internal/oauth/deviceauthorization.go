package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/zitadel/oidc/v3/pkg/oidc"
)

const (
	// Defaults applied when the server omits expires_in or interval.
	defaultExpiresIn    = 1800
	defaultPollInterval = 5
)

// RequestDeviceAuthorization issues one device-authorization request and
// returns the device/user code pair to poll with.
func (c *Client) RequestDeviceAuthorization(ctx context.Context) (*oidc.DeviceAuthorizationResponse, error) {
	endpoint := c.conf.DeviceAuthorizationEndpoint()

	statusCode, body, err := c.postForm(ctx, endpoint, url.Values{
		"client_id": {c.conf.Client.ID},
	})
	if err != nil {
		return nil, err
	}

	if !isSuccess(statusCode) {
		return nil, fmt.Errorf("device authorization endpoint returned status %d: %s",
			statusCode, strings.TrimSpace(string(body)))
	}

	var devAuth oidc.DeviceAuthorizationResponse
	if err := json.Unmarshal(body, &devAuth); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if devAuth.UserCode == "" || devAuth.DeviceCode == "" || devAuth.VerificationURIComplete == "" {
		return nil, fmt.Errorf("%w: missing user_code, device_code or verification_uri_complete", ErrMalformedResponse)
	}

	if devAuth.ExpiresIn == 0 {
		devAuth.ExpiresIn = defaultExpiresIn
	}

	if devAuth.Interval == 0 {
		devAuth.Interval = defaultPollInterval
	}

	c.log(ctx).LogAttrs(ctx, slog.LevelDebug, "obtained device authorization",
		slog.String("user_code", devAuth.UserCode),
		slog.Int("expires_in", devAuth.ExpiresIn),
		slog.Int("interval", devAuth.Interval),
	)

	return &devAuth, nil
}
