package commands

import (
	"errors"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/guard"
)

var ErrDeleteRequestCommandIsNotConstructed = errors.New(
	"DeleteRequestCommand must be created via NewDeleteRequestCommand constructor",
)

// DeleteRequestCommand represents a coordinator's order to remove a request.
type DeleteRequestCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Principal
	requestID uint64

	guard guard.ConstructorGuard
}

// NewDeleteRequestCommand creates a command to delete a locker request.
func NewDeleteRequestCommand(actor kernel.Principal, requestID uint64) (DeleteRequestCommand, error) {
	command := DeleteRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setRequestID(requestID),
	); err != nil {
		return DeleteRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRequestCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRequestCommandIsNotConstructed)
}

// Actor returns the authenticated principal issuing the command.
func (c DeleteRequestCommand) Actor() kernel.Principal {
	return c.actor
}

// RequestID returns the identifier of the request to delete.
func (c DeleteRequestCommand) RequestID() uint64 {
	return c.requestID
}

func (c *DeleteRequestCommand) setActor(actor kernel.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *DeleteRequestCommand) setRequestID(requestID uint64) error {
	if requestID == 0 {
		return ErrRequestIDIsRequired
	}

	c.requestID = requestID
	return nil
}
