package commands

import (
	"errors"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/payment"
	"lockers/internal/pkg/guard"
)

var (
	ErrValidatePaymentCommandIsNotConstructed = errors.New(
		"ValidatePaymentCommand must be created via NewValidatePaymentCommand constructor",
	)
	ErrPaymentIDIsRequired = errors.New("payment id is required")
)

// ValidatePaymentCommand represents a coordinator's review of a payment
// proof: whether the review happened, whether the payment counts as paid,
// and the reason when it does not.
type ValidatePaymentCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Principal
	paymentID uint64
	validated bool
	payStatus payment.PayStatus
	reason    string

	guard guard.ConstructorGuard
}

// NewValidatePaymentCommand creates a command to record a payment review.
func NewValidatePaymentCommand(
	actor kernel.Principal, paymentID uint64, validated bool, payStatus payment.PayStatus, reason string,
) (ValidatePaymentCommand, error) {
	command := ValidatePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setPaymentID(paymentID),
		command.setPayStatus(payStatus),
	); err != nil {
		return ValidatePaymentCommand{}, err
	}

	command.validated = validated
	command.reason = reason

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ValidatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrValidatePaymentCommandIsNotConstructed)
}

// Actor returns the authenticated principal issuing the command.
func (c ValidatePaymentCommand) Actor() kernel.Principal {
	return c.actor
}

// PaymentID returns the identifier of the payment under review.
func (c ValidatePaymentCommand) PaymentID() uint64 {
	return c.paymentID
}

// Validated reports whether the coordinator completed the review.
func (c ValidatePaymentCommand) Validated() bool {
	return c.validated
}

// PayStatus returns the verdict on the payment.
func (c ValidatePaymentCommand) PayStatus() payment.PayStatus {
	return c.payStatus
}

// Reason returns the explanation recorded when the payment is not accepted.
func (c ValidatePaymentCommand) Reason() string {
	return c.reason
}

func (c *ValidatePaymentCommand) setActor(actor kernel.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ValidatePaymentCommand) setPaymentID(paymentID uint64) error {
	if paymentID == 0 {
		return ErrPaymentIDIsRequired
	}

	c.paymentID = paymentID
	return nil
}

func (c *ValidatePaymentCommand) setPayStatus(payStatus payment.PayStatus) error {
	if err := payStatus.Validate(); err != nil {
		return err
	}

	c.payStatus = payStatus
	return nil
}
