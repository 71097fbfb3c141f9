package oauth

import (
	"context"
	"time"

	"github.com/zitadel/oidc/v3/pkg/oidc"
	"golang.org/x/oauth2"
)

// Credentials is the value handed over to the host's credential store after
// a successful login or refresh. It is never mutated afterwards; a refresh
// produces a brand-new value.
type Credentials struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	// ExpiresAt is the absolute expiry of the access token in epoch
	// milliseconds.
	ExpiresAt int64 `json:"expires_at"`
}

// Expired reports whether the access token has reached its expiry.
func (c Credentials) Expired() bool {
	return time.Now().UnixMilli() >= c.ExpiresAt
}

// Token converts the credentials into the [oauth2.Token] shape, so the
// standard golang.org/x/oauth2 transport can authorize serving API calls.
func (c Credentials) Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  c.AccessToken,
		TokenType:    oidc.BearerToken,
		RefreshToken: c.RefreshToken,
		Expiry:       time.UnixMilli(c.ExpiresAt),
	}
}

func newCredentials(tokens *oidc.AccessTokenResponse, now time.Time) Credentials {
	return Credentials{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    now.Add(time.Duration(tokens.ExpiresIn) * time.Second).UnixMilli(),
	}
}

// CredentialStore is the host-owned storage the orchestrator hands
// credentials to. Implementations live outside this package.
type CredentialStore interface {
	Get(ctx context.Context, account string) (Credentials, error)
	Set(ctx context.Context, account string, creds Credentials) error
}
