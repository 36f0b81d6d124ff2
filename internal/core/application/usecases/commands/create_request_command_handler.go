package commands

import (
	"context"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/request"
	"lockers/internal/core/domain/services"
)

// CreateRequestCommandHandler handles the business logic for filing a locker
// request. Persists a new request aggregate in pending status; the store's
// unique constraints enforce one request per user and unique boletas.
//
// Example:
//
//	handler := NewCreateRequestCommandHandler(uowFactory)
//	cmd, _ := NewCreateRequestCommand(actor, "2021630123", "Ana Torres", "5", "ana@alumno.ipn.mx", "5512345678")
//
//	id, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    return fmt.Errorf("request already filed: %w", err)
//	}
type CreateRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewCreateRequestCommandHandler creates a handler for filing locker requests.
// Requires a RequestUoWFactory for transactional persistence operations.
func NewCreateRequestCommandHandler(uowFactory RequestUoWFactory) CreateRequestCommandHandler {
	return CreateRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the request creation command.
// Students file requests under their own account; coordinators may file on
// behalf of a student too. Returns the store-assigned request identifier.
func (h CreateRequestCommandHandler) Handle(ctx context.Context, cmd CreateRequestCommand) (uint64, error) {
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

	requestEntity, err := request.NewRequest(
		actor.UserID(), cmd.Boleta(), cmd.FullName(), cmd.Semester(), cmd.Email(), cmd.Phone(),
	)
	if err != nil {
		return 0, err
	}

	requestRepo := uow.RequestRepository()
	if err = requestRepo.Add(ctx, requestEntity); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return requestEntity.ID(), nil
}
