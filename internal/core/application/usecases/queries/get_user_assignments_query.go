package queries

import (
	"errors"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"
	"lockers/internal/pkg/guard"
)

var ErrGetUserAssignmentsQueryIsNotConstructed = errors.New(
	"GetUserAssignmentsQuery must be created via NewGetUserAssignmentsQuery constructor",
)

// GetUserAssignmentsQuery lists the lockers granted to a user. Students may
// only list their own.
type GetUserAssignmentsQuery struct {
	actor  kernel.Principal
	userID uint64

	guard guard.ConstructorGuard
}

// NewGetUserAssignmentsQuery creates a query for the given user's assignments.
func NewGetUserAssignmentsQuery(actor kernel.Principal, userID uint64) (GetUserAssignmentsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetUserAssignmentsQuery{}, err
	}
	if userID == 0 {
		return GetUserAssignmentsQuery{}, errs.NewValueIsRequiredError("userID")
	}

	return GetUserAssignmentsQuery{
		actor:  actor,
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetUserAssignmentsQueryIsNotConstructed)
}

// Actor returns the authenticated principal issuing the query.
func (q GetUserAssignmentsQuery) Actor() kernel.Principal {
	return q.actor
}

// UserID returns the identifier of the user whose assignments are listed.
func (q GetUserAssignmentsQuery) UserID() uint64 {
	return q.userID
}
