package commands

import (
	"context"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/services"
)

// DecideRequestCommandHandler records a coordinator's verdict on a request.
// A request may be re-decided; the latest verdict wins and the rejection
// reason is kept only while the request stays rejected.
type DecideRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewDecideRequestCommandHandler creates a handler for request verdicts.
func NewDecideRequestCommandHandler(uowFactory RequestUoWFactory) DecideRequestCommandHandler {
	return DecideRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the request decision command.
// Only coordinators may decide requests. Returns errs.ErrObjectNotFound if
// the request does not exist.
func (h DecideRequestCommandHandler) Handle(ctx context.Context, cmd DecideRequestCommand) error {
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
	requestEntity, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if err = requestEntity.Decide(cmd.Decision(), cmd.Reason()); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, requestEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
