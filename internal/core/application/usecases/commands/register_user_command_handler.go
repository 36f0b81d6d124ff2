package commands

import (
	"context"

	"lockers/internal/core/domain/model/user"
	"lockers/internal/core/ports"
)

// RegisterUserCommandHandler creates new user accounts.
// The password is hashed before anything touches the store; duplicate emails
// surface as errs.ErrConflict from the repository.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command.
// Returns the store-assigned user identifier.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (uint64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return 0, err
	}

	userEntity, err := user.NewUser(cmd.Email(), passwordHash, cmd.Role())
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

	if err = uow.UserRepository().Add(ctx, userEntity); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return userEntity.ID(), nil
}
