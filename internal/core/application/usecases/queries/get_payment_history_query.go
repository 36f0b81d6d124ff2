package queries

import (
	"errors"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/guard"
)

var ErrGetPaymentHistoryQueryIsNotConstructed = errors.New(
	"GetPaymentHistoryQuery must be created via NewGetPaymentHistoryQuery constructor",
)

// GetPaymentHistoryQuery retrieves every payment attempt of a request,
// newest first.
type GetPaymentHistoryQuery struct {
	actor     kernel.Principal
	requestID uint64

	guard guard.ConstructorGuard
}

// NewGetPaymentHistoryQuery creates a query for a request's payment history.
func NewGetPaymentHistoryQuery(actor kernel.Principal, requestID uint64) (GetPaymentHistoryQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetPaymentHistoryQuery{}, err
	}
	if requestID == 0 {
		return GetPaymentHistoryQuery{}, ErrRequestIDIsRequired
	}

	return GetPaymentHistoryQuery{
		actor:     actor,
		requestID: requestID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentHistoryQueryIsNotConstructed)
}

// Actor returns the authenticated principal issuing the query.
func (q GetPaymentHistoryQuery) Actor() kernel.Principal {
	return q.actor
}

// RequestID returns the identifier of the request whose history is retrieved.
func (q GetPaymentHistoryQuery) RequestID() uint64 {
	return q.requestID
}
