// Package assignment models the binding of a validated payment to a locker.
// An assignment is the terminal artifact of the workflow: once created it is
// never mutated.
package assignment

import (
	"errors"
	"time"

	"lockers/internal/pkg/errs"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment instance was not
// created through NewAssignment or RestoreAssignment.
var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

// Assignment links exactly one payment to exactly one locker, timestamped at
// creation. It carries no state machine of its own.
type Assignment struct {
	id         uint64
	paymentID  uint64
	lockerID   uint64
	assignedAt time.Time

	isConstructed bool
}

// NewAssignment creates an Assignment for a payment and a locker at the given time.
// The caller is responsible for having checked the payment and locker
// preconditions; see services.LockerAllocator.
func NewAssignment(paymentID, lockerID uint64, assignedAt time.Time) (*Assignment, error) {
	if paymentID == 0 {
		return nil, errs.NewValueIsRequiredError("paymentID")
	}
	if lockerID == 0 {
		return nil, errs.NewValueIsRequiredError("lockerID")
	}
	if assignedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("assignedAt")
	}

	return &Assignment{
		paymentID:     paymentID,
		lockerID:      lockerID,
		assignedAt:    assignedAt,
		isConstructed: true,
	}, nil
}

// RestoreAssignment reconstructs an Assignment from persistence.
func RestoreAssignment(id, paymentID, lockerID uint64, assignedAt time.Time) (*Assignment, error) {
	a, err := NewAssignment(paymentID, lockerID, assignedAt)
	if err != nil {
		return nil, err
	}

	a.id = id
	return a, nil
}

// Validate ensures the Assignment instance was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// AssignID records the store-generated identifier after first persistence.
func (a *Assignment) AssignID(id uint64) error {
	if a.id != 0 {
		return errs.NewValueIsInvalidError("assignment ID is already assigned")
	}
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}
	a.id = id
	return nil
}

// ID returns the assignment's identifier, 0 if not yet persisted.
func (a *Assignment) ID() uint64 { return a.id }

// PaymentID returns the identifier of the backing payment.
func (a *Assignment) PaymentID() uint64 { return a.paymentID }

// LockerID returns the identifier of the assigned locker.
func (a *Assignment) LockerID() uint64 { return a.lockerID }

// AssignedAt returns the creation timestamp.
func (a *Assignment) AssignedAt() time.Time { return a.assignedAt }
