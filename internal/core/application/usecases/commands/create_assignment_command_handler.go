package commands

import (
	"context"
	"time"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/services"
)

// CreateAssignmentCommandHandler orchestrates the locker grant.
// The LockerAllocator enforces the business preconditions in memory; the
// repository's conditional availability flip then closes the race window, so
// two coordinators granting the same locker can never both succeed. The
// assignment insert and the flip share one transaction.
type CreateAssignmentCommandHandler struct {
	uowFactory AllocationUoWFactory
}

// NewCreateAssignmentCommandHandler creates a handler for locker grants.
func NewCreateAssignmentCommandHandler(uowFactory AllocationUoWFactory) CreateAssignmentCommandHandler {
	return CreateAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// Only coordinators grant lockers. Returns errs.ErrPreconditionFailed when
// the payment is not validated as paid or the locker is already taken, and
// errs.ErrConflict when a concurrent grant won the conditional flip.
// Returns the store-assigned assignment identifier on success.
func (h CreateAssignmentCommandHandler) Handle(ctx context.Context, cmd CreateAssignmentCommand) (uint64, error) {
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

	paymentEntity, err := uow.PaymentRepository().Get(ctx, cmd.PaymentID())
	if err != nil {
		return 0, err
	}

	lockerRepo := uow.LockerRepository()
	lockerEntity, err := lockerRepo.Get(ctx, cmd.LockerID())
	if err != nil {
		return 0, err
	}

	assignmentEntity, err := services.NewLockerAllocator().Allocate(paymentEntity, lockerEntity, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if err = lockerRepo.MarkUnavailable(ctx, cmd.LockerID()); err != nil {
		return 0, err
	}

	if err = uow.AssignmentRepository().Add(ctx, assignmentEntity); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return assignmentEntity.ID(), nil
}
