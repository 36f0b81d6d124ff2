package kernel

import "lockers/internal/pkg/errs"

// Principal is the authenticated actor behind a call: a user identifier plus
// its role, extracted from a verified token by the identity collaborator.
// Token verification itself is not a domain concern; by the time a Principal
// exists the token has already been accepted.
//
// The zero value is unauthenticated and fails Validate, so a handler can treat
// "no principal" and "invalid principal" uniformly.
type Principal struct {
	userID uint64
	role   Role
}

// NewPrincipal creates a Principal for a verified user and role.
func NewPrincipal(userID uint64, role Role) (Principal, error) {
	if userID == 0 {
		return Principal{}, errs.NewValueIsRequiredError("userID")
	}
	if err := role.Validate(); err != nil {
		return Principal{}, err
	}

	return Principal{userID: userID, role: role}, nil
}

// Validate reports whether the principal denotes an authenticated user.
func (p Principal) Validate() error {
	if p.userID == 0 {
		return errs.NewUnauthenticatedError("no principal")
	}
	return p.role.Validate()
}

// UserID returns the authenticated user's identifier.
func (p Principal) UserID() uint64 {
	return p.userID
}

// Role returns the authenticated user's role.
func (p Principal) Role() Role {
	return p.role
}

// IsCoordinator reports whether the principal carries the coordinator role.
func (p Principal) IsCoordinator() bool {
	return p.role == Coordinator
}
