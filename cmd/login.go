package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/kimicode/kimi-auth/internal/config"
	"github.com/kimicode/kimi-auth/internal/device"
	"github.com/kimicode/kimi-auth/internal/oauth"
)

// login runs the interactive device authorization flow and prints the
// resulting credentials as JSON, the hand-off format for the host's
// credential store.
func login(ctx context.Context, logger *slog.Logger, conf config.Config, stdout io.Writer) int {
	client := newOAuthClient(logger, conf)

	creds, err := client.Login(ctx, oauth.Callbacks{
		PresentAuthorization: func(_, instructions string) {
			_, _ = fmt.Fprintln(stdout, instructions)
		},
		Progress: func(message string) {
			logger.Info(message)
		},
	})
	if err != nil {
		if errors.Is(err, oauth.ErrLoginAborted) {
			logger.Info("login aborted")

			return 1
		}

		logger.Error(err.Error())

		return 1
	}

	logger.Info("login successful")

	return printJSON(logger, stdout, creds)
}

func newOAuthClient(logger *slog.Logger, conf config.Config) *oauth.Client {
	identity := device.Default()

	httpClient := &http.Client{
		Transport: device.NewTransport(nil, identity),
		Timeout:   conf.HTTP.Timeout,
	}

	return oauth.New(logger, conf.OAuth2, httpClient, identity)
}

func printJSON(logger *slog.Logger, stdout io.Writer, value any) int {
	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(value); err != nil {
		logger.Error(err.Error())

		return 1
	}

	return 0
}
