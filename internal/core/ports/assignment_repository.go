package ports

import (
	"context"

	"lockers/internal/core/domain/model/assignment"
)

// AssignmentRepository persists assignment aggregates. Assignments are
// immutable: there is no Update.
type AssignmentRepository interface {
	// Add inserts a new assignment and assigns its store-generated identifier.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Get retrieves an assignment by ID. Returns errs.ErrObjectNotFound if absent.
	Get(ctx context.Context, id uint64) (*assignment.Assignment, error)

	// CountForLocker reports how many assignments reference a locker.
	// Locker deletion is blocked while this is non-zero.
	CountForLocker(ctx context.Context, lockerID uint64) (int64, error)
}
