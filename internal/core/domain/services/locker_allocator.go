package services

import (
	"time"

	"lockers/internal/core/domain/model/assignment"
	"lockers/internal/core/domain/model/locker"
	"lockers/internal/core/domain/model/payment"

	"lockers/internal/pkg/errs"
)

// LockerAllocator is the domain service at the heart of the workflow: it binds
// a validated payment to an available locker, producing the immutable
// assignment and flipping the locker's availability in one decision.
//
// Business rules:
//   - The payment must be validated by a coordinator and confirmed as paid
//   - The locker must be available at allocation time
//   - Allocation takes the locker: its availability becomes false
//
// The allocator only decides on in-memory aggregates. The surrounding command
// handler persists both changes in a single transaction, and the persistence
// layer re-checks the availability flip with a conditional update so that of
// two concurrent allocations against one locker exactly one commits.
type LockerAllocator struct{}

// NewLockerAllocator creates a new LockerAllocator instance.
func NewLockerAllocator() LockerAllocator {
	return LockerAllocator{}
}

// Allocate validates the preconditions and binds pay to lock at the given time.
//
// Returns:
//   - the new Assignment on success; lock is marked unavailable as a side effect
//   - ErrPreconditionFailed if the payment is not validated+paid or the locker
//     is not available
func (LockerAllocator) Allocate(
	pay *payment.Payment,
	lock *locker.Locker,
	now time.Time,
) (*assignment.Assignment, error) {
	if err := pay.Validate(); err != nil {
		return nil, err
	}
	if err := lock.Validate(); err != nil {
		return nil, err
	}

	if !pay.IsApprovedForAssignment() {
		return nil, errs.NewPreconditionFailedError("payment is not validated as paid")
	}

	if err := lock.MarkUnavailable(); err != nil {
		return nil, errs.NewPreconditionFailedErrorWithCause("locker is not available", err)
	}

	return assignment.NewAssignment(pay.ID(), lock.ID(), now)
}
