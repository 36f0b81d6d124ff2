package commands

import (
	"errors"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrEmailIsRequired    = errors.New("email is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// RegisterUserCommand represents a new account signup.
// Registration is open, so unlike the other commands it carries no acting
// principal; the role defaults to student unless explicitly set.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string
	role     kernel.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user account.
func NewRegisterUserCommand(email, password string, role kernel.Role) (RegisterUserCommand, error) {
	command := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setEmail(email),
		command.setPassword(password),
		command.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Email returns the account email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext password. It never leaves the handler.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the account role.
func (c RegisterUserCommand) Role() kernel.Role {
	return c.role
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
