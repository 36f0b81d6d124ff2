package identity

import (
	"errors"

	"lockers/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// BcryptPasswordHasher hashes credentials with bcrypt at the default cost.
type BcryptPasswordHasher struct{}

// NewBcryptPasswordHasher creates a BcryptPasswordHasher.
func NewBcryptPasswordHasher() *BcryptPasswordHasher {
	return &BcryptPasswordHasher{}
}

// Hash derives a storable bcrypt hash from the plaintext credential.
func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare checks the plaintext credential against a stored hash.
// A mismatch surfaces as errs.ErrUnauthenticated; anything else (a corrupt
// hash, for instance) is returned as-is.
func (h *BcryptPasswordHasher) Compare(hash, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return errs.NewUnauthenticatedError("invalid credentials")
	}
	return err
}
