package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Thor-asgardian/FullStack/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// tokenClaims is the wire shape of a session token. Only this package
// knows it; everything else sees domain.Claims.
type tokenClaims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 session tokens. The secret is
// process-wide and never rotates during the process lifetime; changing
// it between restarts invalidates every outstanding token, which is the
// only revocation mechanism in this design.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService returns a service issuing tokens valid for ttl. A
// zero ttl falls back to the 24h default; a negative ttl is taken
// literally and issues already-expired tokens.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl == 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := &tokenClaims{
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *TokenService) Verify(token string) (*domain.Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.Claims{
		UserID:   claims.Subject,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     claims.Role,
	}, nil
}
