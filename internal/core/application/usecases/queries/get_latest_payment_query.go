package queries

import (
	"errors"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/guard"
)

var ErrGetLatestPaymentQueryIsNotConstructed = errors.New(
	"GetLatestPaymentQuery must be created via NewGetLatestPaymentQuery constructor",
)

// GetLatestPaymentQuery retrieves the most recent payment attempt of a
// request. The highest payment identifier is the current attempt; earlier
// rows are history.
type GetLatestPaymentQuery struct {
	actor     kernel.Principal
	requestID uint64

	guard guard.ConstructorGuard
}

// NewGetLatestPaymentQuery creates a query for a request's current payment.
func NewGetLatestPaymentQuery(actor kernel.Principal, requestID uint64) (GetLatestPaymentQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetLatestPaymentQuery{}, err
	}
	if requestID == 0 {
		return GetLatestPaymentQuery{}, ErrRequestIDIsRequired
	}

	return GetLatestPaymentQuery{
		actor:     actor,
		requestID: requestID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLatestPaymentQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestPaymentQueryIsNotConstructed)
}

// Actor returns the authenticated principal issuing the query.
func (q GetLatestPaymentQuery) Actor() kernel.Principal {
	return q.actor
}

// RequestID returns the identifier of the request whose payment is retrieved.
func (q GetLatestPaymentQuery) RequestID() uint64 {
	return q.requestID
}

// PaymentResponse represents a payment attempt in the read model.
type PaymentResponse struct {
	ID              uint64
	RequestID       uint64
	ProofURL        string
	Validated       bool
	PayStatus       string
	RejectionReason string
}
