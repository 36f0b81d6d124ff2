package ports

import "lockers/internal/core/domain/model/kernel"

// TokenService is the identity collaborator: it turns a verified principal
// into an opaque bearer token and back. The workflow core never inspects
// tokens; a missing or unverifiable token uniformly surfaces as
// errs.ErrUnauthenticated from Verify.
type TokenService interface {
	// Issue signs a token carrying the principal's user ID and role.
	Issue(principal kernel.Principal) (string, error)

	// Verify parses and validates a token, returning the principal it carries.
	Verify(token string) (kernel.Principal, error)
}

// PasswordHasher hides the credential hashing scheme from the workflow core.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext credential.
	Hash(plain string) (string, error)

	// Compare checks a plaintext credential against a stored hash.
	// Returns errs.ErrUnauthenticated on mismatch.
	Compare(hash, plain string) error
}
