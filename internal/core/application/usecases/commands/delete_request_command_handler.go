package commands

import (
	"context"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/services"
	"lockers/internal/pkg/errs"
)

// DeleteRequestCommandHandler removes a locker request.
// Deletion is blocked while payments or documents still reference the
// request, so the history behind an assignment can never be hollowed out.
type DeleteRequestCommandHandler struct {
	uowFactory CleanupUoWFactory
}

// NewDeleteRequestCommandHandler creates a handler for request deletion.
func NewDeleteRequestCommandHandler(uowFactory CleanupUoWFactory) DeleteRequestCommandHandler {
	return DeleteRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the request deletion command.
// Only coordinators may delete requests. Returns errs.ErrPreconditionFailed
// while payments or documents reference the request.
func (h DeleteRequestCommandHandler) Handle(ctx context.Context, cmd DeleteRequestCommand) error {
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

	requestRepo := uow.RequestRepository()
	if _, err := requestRepo.Get(ctx, cmd.RequestID()); err != nil {
		return err
	}

	payments, err := uow.PaymentRepository().CountForRequest(ctx, cmd.RequestID())
	if err != nil {
		return err
	}
	if payments > 0 {
		return errs.NewPreconditionFailedError("request has payments on file")
	}

	documents, err := uow.DocumentRepository().CountForRequest(ctx, cmd.RequestID())
	if err != nil {
		return err
	}
	if documents > 0 {
		return errs.NewPreconditionFailedError("request has documents on file")
	}

	if err = requestRepo.Delete(ctx, cmd.RequestID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
