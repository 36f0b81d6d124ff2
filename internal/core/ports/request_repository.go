package ports

import (
	"context"

	"lockers/internal/core/domain/model/request"
)

// RequestRepository persists request aggregates.
//
// Add relies on the store's unique constraints for the one-request-per-user
// and unique-boleta invariants; implementations translate constraint
// violations into errs.ErrConflict rather than surfacing raw store errors.
type RequestRepository interface {
	// Add inserts a new request and assigns its store-generated identifier.
	Add(ctx context.Context, aggregate *request.Request) error

	// Update saves the mutable fields (status, rejection reason) of an existing request.
	Update(ctx context.Context, aggregate *request.Request) error

	// Delete removes a request. Returns errs.ErrObjectNotFound if absent.
	Delete(ctx context.Context, id uint64) error

	// Get retrieves a request by ID. Returns errs.ErrObjectNotFound if absent.
	Get(ctx context.Context, id uint64) (*request.Request, error)

	// GetByUser retrieves the user's most recent request (highest identifier).
	// Returns errs.ErrObjectNotFound if the user has none.
	GetByUser(ctx context.Context, userID uint64) (*request.Request, error)
}
