package commands

import (
	"errors"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/guard"
)

var ErrCreateAssignmentCommandIsNotConstructed = errors.New(
	"CreateAssignmentCommand must be created via NewCreateAssignmentCommand constructor",
)

// CreateAssignmentCommand represents a coordinator granting a specific locker
// against a validated payment.
//
// Example:
//
//	cmd, err := NewCreateAssignmentCommand(actor, paymentID, lockerID)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment data: %w", err)
//	}
//
//	handler := NewCreateAssignmentCommandHandler(uowFactory)
//	id, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrPreconditionFailed):
//	    log.Println("Payment not validated or locker taken")
//	case errors.Is(err, errs.ErrConflict):
//	    log.Println("Locker grabbed by a concurrent assignment")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Printf("Assigned, id=%d", id)
//	}
type CreateAssignmentCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Principal
	paymentID uint64
	lockerID  uint64

	guard guard.ConstructorGuard
}

// NewCreateAssignmentCommand creates a command to grant a locker.
func NewCreateAssignmentCommand(
	actor kernel.Principal, paymentID, lockerID uint64,
) (CreateAssignmentCommand, error) {
	command := CreateAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setPaymentID(paymentID),
		command.setLockerID(lockerID),
	); err != nil {
		return CreateAssignmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAssignmentCommandIsNotConstructed)
}

// Actor returns the authenticated principal issuing the command.
func (c CreateAssignmentCommand) Actor() kernel.Principal {
	return c.actor
}

// PaymentID returns the identifier of the validated payment backing the grant.
func (c CreateAssignmentCommand) PaymentID() uint64 {
	return c.paymentID
}

// LockerID returns the identifier of the locker to grant.
func (c CreateAssignmentCommand) LockerID() uint64 {
	return c.lockerID
}

func (c *CreateAssignmentCommand) setActor(actor kernel.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateAssignmentCommand) setPaymentID(paymentID uint64) error {
	if paymentID == 0 {
		return ErrPaymentIDIsRequired
	}

	c.paymentID = paymentID
	return nil
}

func (c *CreateAssignmentCommand) setLockerID(lockerID uint64) error {
	if lockerID == 0 {
		return ErrLockerIDIsRequired
	}

	c.lockerID = lockerID
	return nil
}
