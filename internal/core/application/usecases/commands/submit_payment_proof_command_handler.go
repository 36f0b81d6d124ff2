package commands

import (
	"context"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/payment"
	"lockers/internal/core/domain/services"
	"lockers/internal/core/ports"
	"lockers/internal/pkg/errs"
)

// paymentStorageCategory prefixes object keys for payment proofs.
const paymentStorageCategory = "payments"

// SubmitPaymentProofCommandHandler records a payment attempt against an
// approved request. The proof goes to object storage first; the payment row
// starts unvalidated and unpaid until a coordinator reviews it.
type SubmitPaymentProofCommandHandler struct {
	uowFactory PaymentUoWFactory
	storage    ports.ObjectStorage
}

// NewSubmitPaymentProofCommandHandler creates a handler for payment proof submission.
func NewSubmitPaymentProofCommandHandler(
	uowFactory PaymentUoWFactory, storage ports.ObjectStorage,
) SubmitPaymentProofCommandHandler {
	return SubmitPaymentProofCommandHandler{
		uowFactory: uowFactory,
		storage:    storage,
	}
}

// Handle processes the payment proof submission.
// Only the request's owner may submit a proof; coordinators review payments,
// they do not file them. Returns errs.ErrPreconditionFailed while the request
// is not approved, and the store-assigned payment identifier on success.
func (h SubmitPaymentProofCommandHandler) Handle(ctx context.Context, cmd SubmitPaymentProofCommand) (uint64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	actor, err := services.NewAccessPolicy().Authorize(cmd.Actor(), kernel.Student, kernel.Coordinator)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestEntity, err := uow.RequestRepository().Get(ctx, cmd.RequestID())
	if err != nil {
		return 0, err
	}

	if !requestEntity.IsOwnedBy(actor.UserID()) {
		return 0, errs.NewForbiddenError("submit payment for another user's request")
	}

	if !requestEntity.IsApproved() {
		return 0, errs.NewPreconditionFailedError("request is not approved")
	}

	proofURL, err := h.storage.Put(ctx, paymentStorageCategory, cmd.Content(), cmd.ContentType())
	if err != nil {
		return 0, err
	}

	paymentEntity, err := payment.NewPayment(cmd.RequestID(), proofURL)
	if err != nil {
		return 0, err
	}

	if err = uow.PaymentRepository().Add(ctx, paymentEntity); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return paymentEntity.ID(), nil
}
