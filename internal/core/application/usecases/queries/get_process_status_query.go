package queries

import (
	"errors"
	"time"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"
	"lockers/internal/pkg/guard"
)

var ErrGetProcessStatusQueryIsNotConstructed = errors.New(
	"GetProcessStatusQuery must be created via NewGetProcessStatusQuery constructor",
)

// GetProcessStatusQuery projects a student's whole journey into one answer:
// where their request, documents, payment, and locker stand right now.
type GetProcessStatusQuery struct {
	actor        kernel.Principal
	targetUserID uint64
	verifyUser   bool

	guard guard.ConstructorGuard
}

// NewGetProcessStatusQuery creates a query for the actor's own process status.
// An empty journey is a valid answer, so the actor's existence is not checked.
func NewGetProcessStatusQuery(actor kernel.Principal) (GetProcessStatusQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetProcessStatusQuery{}, err
	}

	return GetProcessStatusQuery{
		actor:        actor,
		targetUserID: actor.UserID(),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// NewGetProcessStatusQueryForUser creates a coordinator's view of another
// user's process status. The handler verifies that the target user exists.
func NewGetProcessStatusQueryForUser(actor kernel.Principal, userID uint64) (GetProcessStatusQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetProcessStatusQuery{}, err
	}
	if userID == 0 {
		return GetProcessStatusQuery{}, errs.NewValueIsRequiredError("userID")
	}

	return GetProcessStatusQuery{
		actor:        actor,
		targetUserID: userID,
		verifyUser:   true,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProcessStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetProcessStatusQueryIsNotConstructed)
}

// Actor returns the authenticated principal issuing the query.
func (q GetProcessStatusQuery) Actor() kernel.Principal {
	return q.actor
}

// TargetUserID returns the user whose journey is projected.
func (q GetProcessStatusQuery) TargetUserID() uint64 {
	return q.targetUserID
}

// VerifyUser reports whether the handler must check the target user exists.
func (q GetProcessStatusQuery) VerifyUser() bool {
	return q.verifyUser
}

// ProcessStatusResponse is the journey projection. Each stage is nil until
// the previous one produced data: no request means every field is nil, a
// request without payments leaves the payment and locker parts nil, and so
// on down the chain. Documents is always a slice, empty when there is no
// request or the request has no attachments.
type ProcessStatusResponse struct {
	RequestID        *uint64
	RequestStatus    *string
	RejectionReason  *string
	Documents        []DocumentResponse
	PaymentValidated *bool
	PaymentStatus    *string
	PaymentReason    *string
	LockerNumber     *int
	LockerLocation   *string
	AssignedAt       *time.Time
}
