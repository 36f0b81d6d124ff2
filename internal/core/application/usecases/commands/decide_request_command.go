package commands

import (
	"errors"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/request"
	"lockers/internal/pkg/guard"
)

var (
	ErrDecideRequestCommandIsNotConstructed = errors.New(
		"DecideRequestCommand must be created via NewDecideRequestCommand constructor",
	)
	ErrRequestIDIsRequired = errors.New("request id is required")
)

// DecideRequestCommand represents a coordinator's verdict on a locker request:
// approve it or reject it with a reason.
type DecideRequestCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Principal
	requestID uint64
	decision  request.Status
	reason    string

	guard guard.ConstructorGuard
}

// NewDecideRequestCommand creates a command to approve or reject a request.
// The decision must be an approved or rejected status; pending is not a verdict.
func NewDecideRequestCommand(
	actor kernel.Principal, requestID uint64, decision request.Status, reason string,
) (DecideRequestCommand, error) {
	command := DecideRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setRequestID(requestID),
		command.setDecision(decision),
	); err != nil {
		return DecideRequestCommand{}, err
	}

	command.reason = reason

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DecideRequestCommand) Validate() error {
	return c.guard.Validate(ErrDecideRequestCommandIsNotConstructed)
}

// Actor returns the authenticated principal issuing the command.
func (c DecideRequestCommand) Actor() kernel.Principal {
	return c.actor
}

// RequestID returns the identifier of the request being decided.
func (c DecideRequestCommand) RequestID() uint64 {
	return c.requestID
}

// Decision returns the verdict to record.
func (c DecideRequestCommand) Decision() request.Status {
	return c.decision
}

// Reason returns the rejection reason. Ignored on approval.
func (c DecideRequestCommand) Reason() string {
	return c.reason
}

func (c *DecideRequestCommand) setActor(actor kernel.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *DecideRequestCommand) setRequestID(requestID uint64) error {
	if requestID == 0 {
		return ErrRequestIDIsRequired
	}

	c.requestID = requestID
	return nil
}

func (c *DecideRequestCommand) setDecision(decision request.Status) error {
	if err := decision.ValidateDecision(); err != nil {
		return err
	}

	c.decision = decision
	return nil
}
