package commands

import (
	"errors"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"
	"lockers/internal/pkg/guard"
)

var ErrSubmitPaymentProofCommandIsNotConstructed = errors.New(
	"SubmitPaymentProofCommand must be created via NewSubmitPaymentProofCommand constructor",
)

// Payment proofs must be a photo or scan of the bank voucher.
func getAcceptedProofTypes() map[string]struct{} {
	return map[string]struct{}{
		"image/jpeg":      {},
		"image/png":       {},
		"application/pdf": {},
	}
}

// SubmitPaymentProofCommand represents a student uploading proof of payment
// for their approved locker request. Each submission is a fresh attempt; a
// rejected payment is retried by submitting again, never by editing.
type SubmitPaymentProofCommand struct { //nolint:recvcheck //using for validation
	actor       kernel.Principal
	requestID   uint64
	content     []byte
	contentType string

	guard guard.ConstructorGuard
}

// NewSubmitPaymentProofCommand creates a command to submit a payment proof.
// Accepts only JPEG, PNG, or PDF content up to MaxUploadSize.
func NewSubmitPaymentProofCommand(
	actor kernel.Principal, requestID uint64, content []byte, contentType string,
) (SubmitPaymentProofCommand, error) {
	command := SubmitPaymentProofCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setRequestID(requestID),
		command.setContent(content),
		command.setContentType(contentType),
	); err != nil {
		return SubmitPaymentProofCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitPaymentProofCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPaymentProofCommandIsNotConstructed)
}

// Actor returns the authenticated principal issuing the command.
func (c SubmitPaymentProofCommand) Actor() kernel.Principal {
	return c.actor
}

// RequestID returns the identifier of the request being paid for.
func (c SubmitPaymentProofCommand) RequestID() uint64 {
	return c.requestID
}

// Content returns the raw proof bytes.
func (c SubmitPaymentProofCommand) Content() []byte {
	return c.content
}

// ContentType returns the declared media type of the proof.
func (c SubmitPaymentProofCommand) ContentType() string {
	return c.contentType
}

func (c *SubmitPaymentProofCommand) setActor(actor kernel.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *SubmitPaymentProofCommand) setRequestID(requestID uint64) error {
	if requestID == 0 {
		return ErrRequestIDIsRequired
	}

	c.requestID = requestID
	return nil
}

func (c *SubmitPaymentProofCommand) setContent(content []byte) error {
	if len(content) == 0 {
		return ErrFileContentIsRequired
	}
	if len(content) > MaxUploadSize {
		return errs.NewValueIsTooLargeError("file", int64(len(content)), MaxUploadSize)
	}

	c.content = content
	return nil
}

func (c *SubmitPaymentProofCommand) setContentType(contentType string) error {
	if _, ok := getAcceptedProofTypes()[contentType]; !ok {
		return errs.NewValueIsInvalidError("contentType")
	}

	c.contentType = contentType
	return nil
}
