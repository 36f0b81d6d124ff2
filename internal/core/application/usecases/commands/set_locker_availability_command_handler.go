package commands

import (
	"context"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/services"
)

// SetLockerAvailabilityCommandHandler applies a coordinator's manual
// availability override. Unlike the assignment flow this write is
// unconditional: the coordinator's word is final.
type SetLockerAvailabilityCommandHandler struct {
	uowFactory LockerUoWFactory
}

// NewSetLockerAvailabilityCommandHandler creates a handler for availability overrides.
func NewSetLockerAvailabilityCommandHandler(uowFactory LockerUoWFactory) SetLockerAvailabilityCommandHandler {
	return SetLockerAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability override command.
// Only coordinators may override availability.
func (h SetLockerAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetLockerAvailabilityCommand) error {
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
	lockerEntity, err := lockerRepo.Get(ctx, cmd.LockerID())
	if err != nil {
		return err
	}

	lockerEntity.SetAvailability(cmd.Available())

	if err = lockerRepo.Update(ctx, lockerEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
