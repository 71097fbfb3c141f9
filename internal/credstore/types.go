// Package credstore provides reference implementations of the host-side
// credential store the login flow hands its result to. The oauth package
// itself never persists credentials.
package credstore

import (
	"context"
	"errors"

	"github.com/kimicode/kimi-auth/internal/oauth"
)

// ErrNotExists is returned when no credentials are stored for an account.
var ErrNotExists = errors.New("credentials do not exist")

// Storage is the full store surface. It is a superset of
// [oauth.CredentialStore].
type Storage interface {
	Get(ctx context.Context, account string) (oauth.Credentials, error)
	Set(ctx context.Context, account string, creds oauth.Credentials) error
	Delete(ctx context.Context, account string) error
	Close() error
}
