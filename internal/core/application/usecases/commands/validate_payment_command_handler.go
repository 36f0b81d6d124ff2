package commands

import (
	"context"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/services"
)

// ValidatePaymentCommandHandler records a coordinator's verdict on a payment.
type ValidatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewValidatePaymentCommandHandler creates a handler for payment reviews.
func NewValidatePaymentCommandHandler(uowFactory PaymentUoWFactory) ValidatePaymentCommandHandler {
	return ValidatePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment validation command.
// Only coordinators review payments. Returns errs.ErrObjectNotFound if the
// payment does not exist.
func (h ValidatePaymentCommandHandler) Handle(ctx context.Context, cmd ValidatePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := services.NewAccessPolicy().Authorize(cmd.Actor(), kernel.Coordinator); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	paymentEntity, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	if err = paymentEntity.Decide(cmd.Validated(), cmd.PayStatus(), cmd.Reason()); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, paymentEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
