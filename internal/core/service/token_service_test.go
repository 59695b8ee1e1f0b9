package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Thor-asgardian/FullStack/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       "64f0c2a9e4b0f1a2b3c4d5e6",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     domain.RoleModerator,
	}
}

func TestTokenService_IssueVerify(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty string")
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != "64f0c2a9e4b0f1a2b3c4d5e6" {
		t.Fatalf("unexpected subject: %s", claims.UserID)
	}
	if claims.Username != "alice" || claims.Email != "alice@example.com" {
		t.Fatalf("unexpected identity claims: %+v", claims)
	}
	if claims.Role != domain.RoleModerator {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", -time.Hour)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_WrongKey(t *testing.T) {
	issuer := NewTokenService("secret-one", time.Hour)
	verifier := NewTokenService("secret-two", time.Hour)

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	if _, err := svc.Verify("not-a-token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_RejectsForeignAlgorithm(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS384, jwt.MapClaims{
		"sub": "someone",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := foreign.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for HS384 token, got %v", err)
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService("secret", 0)
	if svc.ttl != defaultTokenTTL {
		t.Fatalf("expected default TTL %v, got %v", defaultTokenTTL, svc.ttl)
	}

	// Only zero falls back: a negative TTL stays literal so expired
	// tokens can be minted deliberately.
	svc = NewTokenService("secret", -time.Hour)
	if svc.ttl != -time.Hour {
		t.Fatalf("expected -1h TTL to be kept, got %v", svc.ttl)
	}
}
