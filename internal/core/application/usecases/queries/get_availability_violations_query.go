package queries

import (
	"errors"

	"lockers/internal/pkg/guard"
)

var ErrGetAvailabilityViolationsQueryIsNotConstructed = errors.New(
	"GetAvailabilityViolationsQuery must be created via NewGetAvailabilityViolationsQuery constructor",
)

// GetAvailabilityViolationsQuery finds lockers that are flagged available
// even though an assignment holds them. The reconciliation job runs this
// periodically; a non-empty answer means a manual availability override went
// against an existing grant.
type GetAvailabilityViolationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailabilityViolationsQuery creates the audit query.
// It runs without a principal: only the scheduler calls it.
func NewGetAvailabilityViolationsQuery() GetAvailabilityViolationsQuery {
	return GetAvailabilityViolationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailabilityViolationsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailabilityViolationsQueryIsNotConstructed)
}

// AvailabilityViolationResponse names a locker whose availability flag
// contradicts its assignments.
type AvailabilityViolationResponse struct {
	LockerID     uint64
	LockerNumber int
	Assignments  int64
}
