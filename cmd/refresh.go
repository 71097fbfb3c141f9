package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/kimicode/kimi-auth/internal/config"
	"github.com/kimicode/kimi-auth/internal/oauth"
)

// refresh exchanges a stored refresh token for new credentials and prints
// them as JSON.
func refresh(ctx context.Context, logger *slog.Logger, conf config.Config, refreshToken string, stdout io.Writer) int {
	if refreshToken == "" {
		logger.Error("usage: kimi-auth refresh <refresh-token>")

		return 1
	}

	client := newOAuthClient(logger, conf)

	creds, err := client.Refresh(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, oauth.ErrRefreshUnauthorized) {
			logger.Error("the refresh token was rejected, run 'kimi-auth login' to sign in again")

			return 1
		}

		logger.Error(err.Error())

		return 1
	}

	return printJSON(logger, stdout, creds)
}
