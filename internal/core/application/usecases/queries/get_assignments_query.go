package queries

import (
	"errors"
	"time"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/guard"
)

var ErrGetAssignmentsQueryIsNotConstructed = errors.New(
	"GetAssignmentsQuery must be created via NewGetAssignmentsQuery constructor",
)

// GetAssignmentsQuery lists granted lockers for the coordinator's overview,
// joining each assignment with its locker and the paying student.
type GetAssignmentsQuery struct {
	actor kernel.Principal

	guard guard.ConstructorGuard
}

// NewGetAssignmentsQuery creates a query over all assignments.
func NewGetAssignmentsQuery(actor kernel.Principal) (GetAssignmentsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetAssignmentsQuery{}, err
	}

	return GetAssignmentsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentsQueryIsNotConstructed)
}

// Actor returns the authenticated principal issuing the query.
func (q GetAssignmentsQuery) Actor() kernel.Principal {
	return q.actor
}

// AssignmentResponse represents a granted locker in the read model.
type AssignmentResponse struct {
	ID             uint64
	PaymentID      uint64
	LockerID       uint64
	LockerNumber   int
	LockerLocation string
	StudentName    string
	Boleta         string
	AssignedAt     time.Time
}
