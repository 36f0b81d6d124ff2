package commands

import (
	"errors"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/guard"
)

var ErrCreateLockerCommandIsNotConstructed = errors.New(
	"CreateLockerCommand must be created via NewCreateLockerCommand constructor",
)

// CreateLockerCommand represents a coordinator registering a new physical
// locker in the inventory. New lockers start out available.
type CreateLockerCommand struct { //nolint:recvcheck //using for validation
	actor    kernel.Principal
	number   int
	location string

	guard guard.ConstructorGuard
}

// NewCreateLockerCommand creates a command to register a locker.
// Number and location validation is owned by the locker aggregate.
func NewCreateLockerCommand(actor kernel.Principal, number int, location string) (CreateLockerCommand, error) {
	command := CreateLockerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setActor(actor); err != nil {
		return CreateLockerCommand{}, err
	}

	command.number = number
	command.location = location

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLockerCommand) Validate() error {
	return c.guard.Validate(ErrCreateLockerCommandIsNotConstructed)
}

// Actor returns the authenticated principal issuing the command.
func (c CreateLockerCommand) Actor() kernel.Principal {
	return c.actor
}

// Number returns the locker's physical number.
func (c CreateLockerCommand) Number() int {
	return c.number
}

// Location returns the locker's campus location.
func (c CreateLockerCommand) Location() string {
	return c.location
}

func (c *CreateLockerCommand) setActor(actor kernel.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
