package commands

import (
	"errors"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/guard"
)

var (
	ErrSetLockerAvailabilityCommandIsNotConstructed = errors.New(
		"SetLockerAvailabilityCommand must be created via NewSetLockerAvailabilityCommand constructor",
	)
	ErrLockerIDIsRequired = errors.New("locker id is required")
)

// SetLockerAvailabilityCommand represents a coordinator's manual override of
// a locker's availability, used when a locker is freed at semester end or
// taken out of service for repairs.
type SetLockerAvailabilityCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Principal
	lockerID  uint64
	available bool

	guard guard.ConstructorGuard
}

// NewSetLockerAvailabilityCommand creates a command to override a locker's availability.
func NewSetLockerAvailabilityCommand(
	actor kernel.Principal, lockerID uint64, available bool,
) (SetLockerAvailabilityCommand, error) {
	command := SetLockerAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setLockerID(lockerID),
	); err != nil {
		return SetLockerAvailabilityCommand{}, err
	}

	command.available = available

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetLockerAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetLockerAvailabilityCommandIsNotConstructed)
}

// Actor returns the authenticated principal issuing the command.
func (c SetLockerAvailabilityCommand) Actor() kernel.Principal {
	return c.actor
}

// LockerID returns the identifier of the locker to override.
func (c SetLockerAvailabilityCommand) LockerID() uint64 {
	return c.lockerID
}

// Available returns the availability flag to set.
func (c SetLockerAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetLockerAvailabilityCommand) setActor(actor kernel.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *SetLockerAvailabilityCommand) setLockerID(lockerID uint64) error {
	if lockerID == 0 {
		return ErrLockerIDIsRequired
	}

	c.lockerID = lockerID
	return nil
}
