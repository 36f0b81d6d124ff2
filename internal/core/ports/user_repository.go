package ports

import (
	"context"

	"lockers/internal/core/domain/model/user"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// Add inserts a new user and assigns its store-generated identifier.
	// Duplicate emails surface as errs.ErrConflict.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by ID. Returns errs.ErrObjectNotFound if absent.
	Get(ctx context.Context, id uint64) (*user.User, error)

	// GetByEmail retrieves a user by its unique email.
	// Returns errs.ErrObjectNotFound if absent.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
