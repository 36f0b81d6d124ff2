package kernel

import (
	"fmt"

	"lockers/internal/pkg/errs"
)

// Role is the closed set of principal roles in the locker workflow.
// There is no dynamic role registry: students submit requests and payments,
// coordinators decide them and allocate lockers.
//
// Role is a value object that validates membership and provides string
// representations for persistence and display.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Student may create a request, attach documents, and submit payment proofs
	// for a request they own.
	Student

	// Coordinator may decide requests, validate payments, manage lockers,
	// and create assignments.
	Coordinator
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Student:     "student",
		Coordinator: "coordinator",
	}
}

// getValidRoleStrings returns only valid Role values, to support validation.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Student:     "student",
		Coordinator: "coordinator",
	}
}

// Validate checks if the Role value is a member of the closed set.
// UnknownRole (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lowercase name of the role.
// It implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// RoleFromString parses a role from its persisted string form.
// Returns an error for any string outside the closed set.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}
