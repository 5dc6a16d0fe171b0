package port

import (
	"context"

	"github.com/ltnam/fashion-store/internal/core/domain"
)

// Identity is the authenticated caller as supplied by the auth collaborator.
type Identity struct {
	UserID string
	Role   domain.Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == domain.RoleAdmin
}

// Authenticator resolves bearer tokens to identities. Token issuance
// mechanics are a glue-layer concern.
type Authenticator interface {
	// Identify fails with domain.ErrInvalidCredentials for unknown or
	// expired tokens.
	Identify(ctx context.Context, token string) (Identity, error)

	Issue(ctx context.Context, identity Identity) (string, error)
}
