// Package auth provides the in-process bearer-token authenticator.
package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ltnam/fashion-store/internal/core/domain"
	"github.com/ltnam/fashion-store/internal/port"
)

// TokenStore maps opaque bearer tokens to identities. Tokens are minted at
// login and expire after a fixed TTL. Expired entries are dropped on
// lookup and swept in bulk at most once per TTL, so the map stays bounded
// by the tokens issued within one TTL window.
type TokenStore struct {
	mu        sync.RWMutex
	tokens    map[string]entry
	ttl       time.Duration
	now       func() time.Time
	nextSweep time.Time
}

type entry struct {
	identity  port.Identity
	expiresAt time.Time
}

func NewTokenStore(ttl time.Duration) *TokenStore {
	return &TokenStore{
		tokens: make(map[string]entry),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *TokenStore) Issue(ctx context.Context, identity port.Identity) (string, error) {
	token := uuid.NewString()
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	if !now.Before(s.nextSweep) {
		for k, e := range s.tokens {
			if now.After(e.expiresAt) {
				delete(s.tokens, k)
			}
		}
		s.nextSweep = now.Add(s.ttl)
	}
	s.tokens[token] = entry{identity: identity, expiresAt: now.Add(s.ttl)}
	return token, nil
}

func (s *TokenStore) Identify(ctx context.Context, token string) (port.Identity, error) {
	s.mu.RLock()
	e, ok := s.tokens[token]
	s.mu.RUnlock()

	if !ok {
		return port.Identity{}, fmt.Errorf("%w: unknown token", domain.ErrInvalidCredentials)
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.tokens, token)
		s.mu.Unlock()
		return port.Identity{}, fmt.Errorf("%w: token expired", domain.ErrInvalidCredentials)
	}
	return e.identity, nil
}
