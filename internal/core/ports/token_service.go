package ports

import "github.com/Thor-asgardian/FullStack/internal/core/domain"

// TokenService issues and verifies bearer tokens. The token format is
// opaque to every other component: only implementations of this
// interface may construct or inspect the encoded string.
type TokenService interface {
	// Issue mints a signed token carrying the user's identity claims,
	// valid from now until now plus the service's configured TTL.
	Issue(user *domain.User) (string, error)
	// Verify checks the signature and expiry of token and returns the
	// embedded claims. It fails with domain.ErrTokenExpired for expired
	// tokens and domain.ErrTokenInvalid for anything else.
	Verify(token string) (*domain.Claims, error)
}
