package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltnam/fashion-store/internal/core/domain"
	"github.com/ltnam/fashion-store/internal/port"
)

func TestIssueAndIdentify(t *testing.T) {
	store := NewTokenStore(time.Hour)
	ctx := context.Background()

	ident := port.Identity{UserID: "u1", Role: domain.RoleCustomer}
	token, err := store.Issue(ctx, ident)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := store.Identify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, ident, got)
}

func TestIdentifyUnknownToken(t *testing.T) {
	store := NewTokenStore(time.Hour)
	_, err := store.Identify(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestIdentifyExpiredToken(t *testing.T) {
	store := NewTokenStore(time.Hour)
	ctx := context.Background()

	current := time.Now()
	store.now = func() time.Time { return current }

	token, err := store.Issue(ctx, port.Identity{UserID: "u1", Role: domain.RoleCustomer})
	require.NoError(t, err)

	current = current.Add(2 * time.Hour)
	_, err = store.Identify(ctx, token)
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// Expired tokens are evicted, so a second lookup is also rejected.
	_, err = store.Identify(ctx, token)
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestIssueSweepsExpiredTokens(t *testing.T) {
	store := NewTokenStore(time.Hour)
	ctx := context.Background()

	current := time.Now()
	store.now = func() time.Time { return current }

	for i := 0; i < 10; i++ {
		_, err := store.Issue(ctx, port.Identity{UserID: "u1"})
		require.NoError(t, err)
	}

	// All ten expire; the next issue past the sweep deadline drops them
	// without any lookups, so the map does not grow with dead entries.
	current = current.Add(2 * time.Hour)
	live, err := store.Issue(ctx, port.Identity{UserID: "u2"})
	require.NoError(t, err)

	store.mu.RLock()
	size := len(store.tokens)
	store.mu.RUnlock()
	assert.Equal(t, 1, size)

	got, err := store.Identify(ctx, live)
	require.NoError(t, err)
	assert.Equal(t, "u2", got.UserID)
}

func TestTokensAreUnique(t *testing.T) {
	store := NewTokenStore(time.Hour)
	ctx := context.Background()

	a, err := store.Issue(ctx, port.Identity{UserID: "u1"})
	require.NoError(t, err)
	b, err := store.Issue(ctx, port.Identity{UserID: "u1"})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
