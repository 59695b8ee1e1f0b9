package ports

// PasswordHasher hashes secrets one way with a fresh random salt per
// call, so two hashes of the same secret never match byte-for-byte.
// Verify is the only way to compare a secret against a stored digest.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}
