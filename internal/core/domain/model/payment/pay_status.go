package payment

import (
	"fmt"

	"lockers/internal/pkg/errs"
)

// PayStatus is the coordinator's verdict on a payment proof.
type PayStatus int

const (
	// UnknownPayStatus represents an invalid or undefined pay status.
	UnknownPayStatus PayStatus = iota

	// Unpaid is the initial verdict and the verdict of a rejected proof.
	Unpaid

	// Paid means the coordinator confirmed the fee was received.
	Paid
)

func getPayStatusStrings() map[PayStatus]string {
	return map[PayStatus]string{
		UnknownPayStatus: "unknown",
		Unpaid:           "no pagado",
		Paid:             "pagado",
	}
}

func getValidPayStatusStrings() map[PayStatus]string {
	//nolint:exhaustive // UnknownPayStatus is intentionally excluded as it's invalid
	return map[PayStatus]string{
		Unpaid: "no pagado",
		Paid:   "pagado",
	}
}

// Validate checks if the PayStatus value is valid.
func (s PayStatus) Validate() error {
	if _, ok := getValidPayStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("pay status is invalid", fmt.Errorf("%d is not a valid pay status", s))
	}
	return nil
}

// String returns the persisted name of the pay status.
func (s PayStatus) String() string {
	if str, ok := getPayStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// PayStatusFromString parses a pay status from its persisted string form.
func PayStatusFromString(s string) (PayStatus, error) {
	for status, str := range getValidPayStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownPayStatus, errs.NewValueIsInvalidErrorWithCause("pay status is invalid", fmt.Errorf("%q is not a valid pay status", s))
}
