package commands

import (
	"errors"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/guard"
)

var ErrDeleteLockerCommandIsNotConstructed = errors.New(
	"DeleteLockerCommand must be created via NewDeleteLockerCommand constructor",
)

// DeleteLockerCommand represents a coordinator removing a locker from the inventory.
type DeleteLockerCommand struct { //nolint:recvcheck //using for validation
	actor    kernel.Principal
	lockerID uint64

	guard guard.ConstructorGuard
}

// NewDeleteLockerCommand creates a command to delete a locker.
func NewDeleteLockerCommand(actor kernel.Principal, lockerID uint64) (DeleteLockerCommand, error) {
	command := DeleteLockerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setLockerID(lockerID),
	); err != nil {
		return DeleteLockerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteLockerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLockerCommandIsNotConstructed)
}

// Actor returns the authenticated principal issuing the command.
func (c DeleteLockerCommand) Actor() kernel.Principal {
	return c.actor
}

// LockerID returns the identifier of the locker to delete.
func (c DeleteLockerCommand) LockerID() uint64 {
	return c.lockerID
}

func (c *DeleteLockerCommand) setActor(actor kernel.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *DeleteLockerCommand) setLockerID(lockerID uint64) error {
	if lockerID == 0 {
		return ErrLockerIDIsRequired
	}

	c.lockerID = lockerID
	return nil
}
