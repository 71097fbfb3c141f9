package oauth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/zitadel/oidc/v3/pkg/oidc"
)

// Callbacks is the capability interface the host injects into Login. Nil
// members are skipped.
type Callbacks struct {
	// PresentAuthorization receives the browsable verification URL and a
	// human-readable instruction embedding the user code. The host renders
	// both; this package performs no UI.
	PresentAuthorization func(verificationURI, instructions string)

	// Progress receives short status notices while the flow waits.
	Progress func(message string)
}

func (cb Callbacks) presentAuthorization(verificationURI, instructions string) {
	if cb.PresentAuthorization != nil {
		cb.PresentAuthorization(verificationURI, instructions)
	}
}

func (cb Callbacks) progress(message string) {
	if cb.Progress != nil {
		cb.Progress(message)
	}
}

// Login drives the full interactive device authorization flow: obtain a
// device code, hand the verification URL to the host, poll the token
// endpoint at the server's cadence and restart with a fresh device code
// whenever the current one expires. Restarts are unbounded; only ctx
// cancellation or a fatal server response ends the flow without credentials.
func (c *Client) Login(ctx context.Context, callbacks Callbacks) (Credentials, error) {
	logger := c.log(ctx)

	for {
		devAuth, err := c.RequestDeviceAuthorization(ctx)
		if err != nil {
			return Credentials{}, err
		}

		callbacks.presentAuthorization(devAuth.VerificationURIComplete, fmt.Sprintf(
			"Open %s in your browser and confirm the code %s to sign in.",
			devAuth.VerificationURIComplete, devAuth.UserCode,
		))

		deadline := c.now().Add(time.Duration(devAuth.ExpiresIn) * time.Second)

		creds, restart, err := c.pollUntil(ctx, callbacks, devAuth, deadline)
		if err != nil {
			return Credentials{}, err
		}

		if !restart {
			return creds, nil
		}

		logger.LogAttrs(ctx, slog.LevelInfo, "device code expired, requesting a new one")
	}
}

// pollUntil polls for the given device code until the deadline. It reports
// restart=true when a fresh device authorization is needed, either because
// the server signaled expired_token or because the local deadline passed.
func (c *Client) pollUntil(
	ctx context.Context, callbacks Callbacks, devAuth *oidc.DeviceAuthorizationResponse, deadline time.Time,
) (Credentials, bool, error) {
	notified := false

	for c.now().Before(deadline) {
		select {
		case <-ctx.Done():
			return Credentials{}, false, fmt.Errorf("%w: %w", ErrLoginAborted, context.Cause(ctx))
		default:
		}

		tokens, err := c.PollToken(ctx, devAuth.DeviceCode)

		switch {
		case errors.Is(err, ErrDeviceCodeExpired):
			callbacks.progress("The device code expired, requesting a new one.")

			return Credentials{}, true, nil
		case err != nil:
			return Credentials{}, false, err
		case tokens != nil:
			return newCredentials(tokens, c.now()), false, nil
		}

		if !notified {
			callbacks.progress("Waiting for you to authorize the device...")

			notified = true
		}

		if err := c.sleep(ctx, pollInterval(devAuth.Interval)); err != nil {
			return Credentials{}, false, fmt.Errorf("%w: %w", ErrLoginAborted, err)
		}
	}

	// The server should have reported expired_token by now. The local
	// deadline is an equally valid trigger to re-obtain a device code.
	return Credentials{}, true, nil
}

func pollInterval(interval int) time.Duration {
	return time.Duration(max(interval, 1)) * time.Second
}
