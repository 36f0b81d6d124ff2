package ports

import (
	"context"

	"lockers/internal/core/domain/model/payment"
)

// PaymentRepository persists payment aggregates. A request accumulates payment
// attempts; ordering by identifier is the canonical "most recent first".
type PaymentRepository interface {
	// Add inserts a new payment and assigns its store-generated identifier.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update saves the validation verdict of an existing payment.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment by ID. Returns errs.ErrObjectNotFound if absent.
	Get(ctx context.Context, id uint64) (*payment.Payment, error)

	// GetLatestForRequest retrieves the payment with the highest identifier
	// for a request. Returns errs.ErrObjectNotFound if the request has none.
	GetLatestForRequest(ctx context.Context, requestID uint64) (*payment.Payment, error)

	// CountForRequest reports how many payments reference a request.
	CountForRequest(ctx context.Context, requestID uint64) (int64, error)
}
