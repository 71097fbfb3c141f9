package oauth

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/oauth2"
)

// TokenSource returns an [oauth2.TokenSource] backed by the host's
// credential store. Expired access tokens are refreshed through this client
// and the new credentials are written back to the store, so serving API
// calls can use the standard oauth2 transport.
func (c *Client) TokenSource(ctx context.Context, account string, store CredentialStore) oauth2.TokenSource {
	return &storeTokenSource{
		ctx:     ctx,
		client:  c,
		account: account,
		store:   store,
	}
}

type storeTokenSource struct {
	ctx     context.Context
	client  *Client
	account string
	store   CredentialStore

	mu sync.Mutex
}

func (ts *storeTokenSource) Token() (*oauth2.Token, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	creds, err := ts.store.Get(ts.ctx, ts.account)
	if err != nil {
		return nil, fmt.Errorf("error from credential store: %w", err)
	}

	if !creds.Expired() {
		return creds.Token(), nil
	}

	creds, err = ts.client.Refresh(ts.ctx, creds.RefreshToken)
	if err != nil {
		return nil, err
	}

	if err := ts.store.Set(ts.ctx, ts.account, creds); err != nil {
		return nil, fmt.Errorf("error from credential store: %w", err)
	}

	return creds.Token(), nil
}
