package commands

import (
	"context"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/services"
	"lockers/internal/pkg/errs"
)

// DeleteLockerCommandHandler removes a locker from the inventory.
// Deletion is blocked while an assignment references the locker, so granted
// lockers keep their paper trail.
type DeleteLockerCommandHandler struct {
	uowFactory AllocationUoWFactory
}

// NewDeleteLockerCommandHandler creates a handler for locker deletion.
func NewDeleteLockerCommandHandler(uowFactory AllocationUoWFactory) DeleteLockerCommandHandler {
	return DeleteLockerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the locker deletion command.
// Only coordinators manage the inventory. Returns errs.ErrPreconditionFailed
// while assignments reference the locker.
func (h DeleteLockerCommandHandler) Handle(ctx context.Context, cmd DeleteLockerCommand) error {
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

	lockerRepo := uow.LockerRepository()
	if _, err := lockerRepo.Get(ctx, cmd.LockerID()); err != nil {
		return err
	}

	assignments, err := uow.AssignmentRepository().CountForLocker(ctx, cmd.LockerID())
	if err != nil {
		return err
	}
	if assignments > 0 {
		return errs.NewPreconditionFailedError("locker has assignments on file")
	}

	if err = lockerRepo.Delete(ctx, cmd.LockerID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
