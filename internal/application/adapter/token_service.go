// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// TokenClaims holds the identity carried by a validated access token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}

// TokenService issues and validates access tokens. The ledger core never
// trusts a client-supplied user id; the id always comes from these claims.
type TokenService interface {
	// GenerateAccessToken issues a signed access token for the user.
	GenerateAccessToken(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// ValidateAccessToken verifies a token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
