package services

import (
	"fmt"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"
)

// AccessPolicy authorizes an authenticated principal against an allowed set of
// roles. It is a pure check with no side effects: authentication (verifying
// the token and extracting the principal) happens in the inbound adapter, and
// the policy only answers "may this principal perform an action restricted to
// these roles".
//
// A missing or unverifiable principal fails with ErrUnauthenticated; a valid
// principal whose role is not in the allowed set fails with ErrForbidden.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Authorize checks the principal against the allowed roles and returns it
// unchanged on success, so call sites can keep authorization and use on one line.
// An empty allowed set means any authenticated principal passes.
func (AccessPolicy) Authorize(principal kernel.Principal, allowed ...kernel.Role) (kernel.Principal, error) {
	if err := principal.Validate(); err != nil {
		return kernel.Principal{}, errs.NewUnauthenticatedErrorWithCause("principal is not authenticated", err)
	}

	if len(allowed) == 0 {
		return principal, nil
	}

	for _, role := range allowed {
		if principal.Role() == role {
			return principal, nil
		}
	}

	return kernel.Principal{}, errs.NewForbiddenError(
		fmt.Sprintf("role %s is not allowed for this action", principal.Role()),
	)
}
