package commands

import (
	"context"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/locker"
	"lockers/internal/core/domain/services"
)

// CreateLockerCommandHandler registers new lockers in the inventory.
type CreateLockerCommandHandler struct {
	uowFactory LockerUoWFactory
}

// NewCreateLockerCommandHandler creates a handler for locker registration.
func NewCreateLockerCommandHandler(uowFactory LockerUoWFactory) CreateLockerCommandHandler {
	return CreateLockerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the locker creation command.
// Only coordinators manage the inventory. Duplicate locker numbers surface
// as errs.ErrConflict. Returns the store-assigned locker identifier.
func (h CreateLockerCommandHandler) Handle(ctx context.Context, cmd CreateLockerCommand) (uint64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if _, err := services.NewAccessPolicy().Authorize(cmd.Actor(), kernel.Coordinator); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lockerEntity, err := locker.NewLocker(cmd.Number(), cmd.Location())
	if err != nil {
		return 0, err
	}

	if err = uow.LockerRepository().Add(ctx, lockerEntity); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return lockerEntity.ID(), nil
}
