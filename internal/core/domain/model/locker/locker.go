// Package locker models a physical storage unit identified by number and location.
package locker

import (
	"errors"
	"strings"

	"lockers/internal/pkg/errs"
)

// ErrLockerIsNotConstructed is returned when a Locker instance was not created
// through NewLocker or RestoreLocker.
var ErrLockerIsNotConstructed = errors.New("Locker must be created via NewLocker constructor")

// ErrLockerIsNotAvailable is returned when marking an already unavailable
// locker as taken. Callers translate this into a precondition failure.
var ErrLockerIsNotAvailable = errors.New("locker is not available")

// Locker is a physical storage unit. Its availability flag and the set of
// assignments referencing it must stay consistent: a locker backing an active
// assignment is never available.
type Locker struct {
	id        uint64
	number    int
	location  string
	available bool

	isConstructed bool
}

// NewLocker creates an available Locker with a unique number and a location.
func NewLocker(number int, location string) (*Locker, error) {
	l := &Locker{
		available:     true,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setNumber(number),
		l.setLocation(location),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLocker reconstructs a Locker from persistence.
func RestoreLocker(id uint64, number int, location string, available bool) (*Locker, error) {
	l, err := NewLocker(number, location)
	if err != nil {
		return nil, err
	}

	l.id = id
	l.available = available
	return l, nil
}

// Validate ensures the Locker instance was properly constructed.
func (l *Locker) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLockerIsNotConstructed
	}
	return nil
}

// AssignID records the store-generated identifier after first persistence.
func (l *Locker) AssignID(id uint64) error {
	if l.id != 0 {
		return errs.NewValueIsInvalidError("locker ID is already assigned")
	}
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}
	l.id = id
	return nil
}

// ID returns the locker's identifier, 0 if not yet persisted.
func (l *Locker) ID() uint64 { return l.id }

// Number returns the locker's unique number.
func (l *Locker) Number() int { return l.number }

// Location returns the locker's physical location.
func (l *Locker) Location() string { return l.location }

// Available reports whether the locker can accept an assignment.
func (l *Locker) Available() bool { return l.available }

// MarkUnavailable takes the locker for an assignment. Fails with
// ErrLockerIsNotAvailable if it is already taken; the persistence layer
// re-checks this transition with a conditional update to close the race
// between concurrent assignment attempts.
func (l *Locker) MarkUnavailable() error {
	if !l.available {
		return ErrLockerIsNotAvailable
	}
	l.available = false
	return nil
}

// SetAvailability force-sets the availability flag. This is the coordinator's
// manual override, not part of the assignment flow.
func (l *Locker) SetAvailability(available bool) {
	l.available = available
}

func (l *Locker) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidError("number")
	}
	l.number = number
	return nil
}

func (l *Locker) setLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return errs.NewValueIsRequiredError("location")
	}
	l.location = strings.TrimSpace(location)
	return nil
}
