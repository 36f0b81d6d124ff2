package ports

import (
	"context"

	"lockers/internal/core/domain/model/locker"
)

// LockerRepository persists locker aggregates.
type LockerRepository interface {
	// Add inserts a new locker and assigns its store-generated identifier.
	// Duplicate locker numbers surface as errs.ErrConflict.
	Add(ctx context.Context, aggregate *locker.Locker) error

	// Update saves the availability flag of an existing locker unconditionally.
	// This backs the coordinator's manual availability override, not the
	// assignment flow; assignments go through MarkUnavailable.
	Update(ctx context.Context, aggregate *locker.Locker) error

	// Delete removes a locker. Returns errs.ErrObjectNotFound if absent.
	// Callers must first check no assignment references the locker.
	Delete(ctx context.Context, id uint64) error

	// Get retrieves a locker by ID. Returns errs.ErrObjectNotFound if absent.
	Get(ctx context.Context, id uint64) (*locker.Locker, error)

	// MarkUnavailable flips the locker's availability to false with a
	// conditional update (WHERE available = true, rows-affected must be 1).
	// If the locker was concurrently taken the update matches zero rows and
	// errs.ErrConflict is returned; the surrounding transaction must roll back.
	MarkUnavailable(ctx context.Context, id uint64) error
}
