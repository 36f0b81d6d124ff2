package queries

import (
	"errors"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"
	"lockers/internal/pkg/guard"
)

var ErrGetUserRequestQueryIsNotConstructed = errors.New(
	"GetUserRequestQuery must be created via NewGetUserRequestQuery constructor",
)

// GetUserRequestQuery retrieves a user's locker request. Students may only
// look up their own; coordinators may look up anyone's.
type GetUserRequestQuery struct {
	actor  kernel.Principal
	userID uint64

	guard guard.ConstructorGuard
}

// NewGetUserRequestQuery creates a query for the given user's request.
func NewGetUserRequestQuery(actor kernel.Principal, userID uint64) (GetUserRequestQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetUserRequestQuery{}, err
	}
	if userID == 0 {
		return GetUserRequestQuery{}, errs.NewValueIsRequiredError("userID")
	}

	return GetUserRequestQuery{
		actor:  actor,
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserRequestQuery) Validate() error {
	return q.guard.Validate(ErrGetUserRequestQueryIsNotConstructed)
}

// Actor returns the authenticated principal issuing the query.
func (q GetUserRequestQuery) Actor() kernel.Principal {
	return q.actor
}

// UserID returns the identifier of the user whose request is retrieved.
func (q GetUserRequestQuery) UserID() uint64 {
	return q.userID
}
