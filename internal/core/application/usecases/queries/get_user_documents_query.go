package queries

import (
	"errors"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"
	"lockers/internal/pkg/guard"
)

var ErrGetUserDocumentsQueryIsNotConstructed = errors.New(
	"GetUserDocumentsQuery must be created via NewGetUserDocumentsQuery constructor",
)

// GetUserDocumentsQuery lists every document a user has attached across their
// requests. Students may only list their own.
type GetUserDocumentsQuery struct {
	actor  kernel.Principal
	userID uint64

	guard guard.ConstructorGuard
}

// NewGetUserDocumentsQuery creates a query for the given user's documents.
func NewGetUserDocumentsQuery(actor kernel.Principal, userID uint64) (GetUserDocumentsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetUserDocumentsQuery{}, err
	}
	if userID == 0 {
		return GetUserDocumentsQuery{}, errs.NewValueIsRequiredError("userID")
	}

	return GetUserDocumentsQuery{
		actor:  actor,
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserDocumentsQuery) Validate() error {
	return q.guard.Validate(ErrGetUserDocumentsQueryIsNotConstructed)
}

// Actor returns the authenticated principal issuing the query.
func (q GetUserDocumentsQuery) Actor() kernel.Principal {
	return q.actor
}

// UserID returns the identifier of the user whose documents are listed.
func (q GetUserDocumentsQuery) UserID() uint64 {
	return q.userID
}
