package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "s3cret" {
		t.Fatalf("digest must not equal the raw secret")
	}

	if !h.Verify("s3cret", digest) {
		t.Fatalf("Verify rejected the original secret")
	}
	if h.Verify("wrong", digest) {
		t.Fatalf("Verify accepted a different secret")
	}
}

func TestBcryptHasher_FreshSaltPerCall(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	if first == second {
		t.Fatalf("two hashes of the same secret must differ")
	}
	if !h.Verify("same-password", first) || !h.Verify("same-password", second) {
		t.Fatalf("both digests must verify against the original secret")
	}
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewBcryptHasher(-10)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", h.cost)
	}
}
