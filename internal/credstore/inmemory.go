package credstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/kimicode/kimi-auth/internal/oauth"
)

// InMemory keeps encrypted credentials in process memory. Entries whose
// refresh token is older than the retention window are collected in the
// background; a retention of zero keeps entries until deleted.
type InMemory struct {
	data      sync.Map
	cipher    *cipher
	retention time.Duration
	done      chan struct{}
	closeOnce sync.Once
}

type item struct {
	storedAt time.Time
	creds    []byte
}

func NewInMemory(secret string, retention time.Duration) *InMemory {
	storage := &InMemory{
		cipher:    newCipher(secret),
		retention: retention,
		done:      make(chan struct{}),
	}

	if retention > 0 {
		go storage.collect()
	}

	return storage
}

func (s *InMemory) Set(_ context.Context, account string, creds oauth.Credentials) error {
	plain, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode error: %w", err)
	}

	encrypted, err := s.cipher.encrypt(plain)
	if err != nil {
		return fmt.Errorf("encrypt error: %w", err)
	}

	s.data.Store(account, item{creds: encrypted, storedAt: time.Now()})

	return nil
}

func (s *InMemory) Get(_ context.Context, account string) (oauth.Credentials, error) {
	data, ok := s.data.Load(account)
	if !ok {
		return oauth.Credentials{}, ErrNotExists
	}

	entry, ok := data.(item)
	if !ok {
		s.data.Delete(account)

		return oauth.Credentials{}, ErrNotExists
	}

	plain, err := s.cipher.decrypt(entry.creds)
	if err != nil {
		return oauth.Credentials{}, fmt.Errorf("decrypt error: %w", err)
	}

	var creds oauth.Credentials
	if err := json.Unmarshal(plain, &creds); err != nil {
		return oauth.Credentials{}, fmt.Errorf("decode error: %w", err)
	}

	return creds, nil
}

func (s *InMemory) Delete(_ context.Context, account string) error {
	s.data.Delete(account)

	return nil
}

func (s *InMemory) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
	})

	return nil
}

func (s *InMemory) collect() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.data.Range(func(account, data any) bool {
				entry, ok := data.(item)
				if !ok || time.Since(entry.storedAt) > s.retention {
					s.data.Delete(account)
				}

				return true
			})
		}
	}
}
