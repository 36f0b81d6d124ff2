package queries

import (
	"errors"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/guard"
)

var ErrGetLockersQueryIsNotConstructed = errors.New(
	"GetLockersQuery must be created via NewGetLockersQuery constructor",
)

// GetLockersQuery lists the locker inventory. With OnlyAvailable set it
// narrows to lockers open for assignment, which is what students browse.
type GetLockersQuery struct {
	actor         kernel.Principal
	onlyAvailable bool

	guard guard.ConstructorGuard
}

// NewGetLockersQuery creates a query over the locker inventory.
func NewGetLockersQuery(actor kernel.Principal, onlyAvailable bool) (GetLockersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetLockersQuery{}, err
	}

	return GetLockersQuery{
		actor:         actor,
		onlyAvailable: onlyAvailable,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLockersQuery) Validate() error {
	return q.guard.Validate(ErrGetLockersQueryIsNotConstructed)
}

// Actor returns the authenticated principal issuing the query.
func (q GetLockersQuery) Actor() kernel.Principal {
	return q.actor
}

// OnlyAvailable reports whether the listing is narrowed to free lockers.
func (q GetLockersQuery) OnlyAvailable() bool {
	return q.onlyAvailable
}

// LockerResponse represents a locker in the read model.
type LockerResponse struct {
	ID        uint64
	Number    int
	Location  string
	Available bool
}
