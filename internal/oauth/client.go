// Package oauth implements the device authorization grant (RFC 8628) against
// the Kimi authorization server: obtaining a device/user code pair, polling
// for token issuance and refreshing expired access tokens.
package oauth

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kimicode/kimi-auth/internal/config"
	"github.com/kimicode/kimi-auth/internal/device"
	"github.com/zitadel/logging"
)

// Client talks to the OAuth endpoints of the authorization server. All
// methods perform exactly one HTTP exchange, except Login which drives the
// full interactive flow.
type Client struct {
	conf       config.OAuth2
	httpClient *http.Client
	logger     *slog.Logger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a Client. If httpClient is nil, a client carrying the OAuth
// header set of the given identity is constructed.
func New(logger *slog.Logger, conf config.OAuth2, httpClient *http.Client, identity device.Identity) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: device.NewTransport(nil, identity),
			Timeout:   30 * time.Second,
		}
	}

	return &Client{
		conf:       conf,
		httpClient: httpClient,
		logger:     logger,
		now:        time.Now,
		sleep:      sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return context.Cause(ctx)
	case <-timer.C:
		return nil
	}
}

// log returns the logger carried in ctx, falling back to the client logger.
func (c *Client) log(ctx context.Context) *slog.Logger {
	if logger, ok := logging.FromContext(ctx); ok {
		return logger
	}

	return c.logger
}

// postForm issues one form-encoded POST and returns the status code and the
// full response body.
func (c *Client) postForm(ctx context.Context, endpoint string, form url.Values) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return 0, nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("error from authorization server: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("error reading response body: %w", err)
	}

	return resp.StatusCode, body, nil
}

func isSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}
