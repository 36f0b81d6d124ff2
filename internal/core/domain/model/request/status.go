package request

import (
	"fmt"

	"lockers/internal/pkg/errs"
)

// Status represents the lifecycle state of a locker request.
//
// State transitions:
//
//	Pending ──┬──> Approved
//	          │       ↕ (re-decision allowed)
//	          └──> Rejected
//
// A coordinator decision always targets Approved or Rejected; Pending is only
// ever the initial state. Re-deciding an already decided request is allowed
// and overwrites the previous decision.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status of a freshly submitted request.
	Pending

	// Approved means a coordinator accepted the request; the student may now
	// submit a payment proof.
	Approved

	// Rejected means a coordinator declined the request, with a reason.
	Rejected
)

// getStatusStrings returns a map of Status values to their persisted string forms.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Pending:       "pendiente",
		Approved:      "aprobada",
		Rejected:      "rechazada",
	}
}

// getValidStatusStrings returns only valid Status values, to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "pendiente",
		Approved: "aprobada",
		Rejected: "rechazada",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a status from its persisted string form.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// ValidateDecision checks that a status is a legal decision target.
// Only Approved and Rejected are decisions; Pending cannot be restored once left.
func (s Status) ValidateDecision() error {
	if s != Approved && s != Rejected {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid decision", s.String()),
		)
	}
	return nil
}
