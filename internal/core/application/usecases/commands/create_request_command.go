package commands

import (
	"errors"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/guard"
)

var ErrCreateRequestCommandIsNotConstructed = errors.New(
	"CreateRequestCommand must be created via NewCreateRequestCommand constructor",
)

// CreateRequestCommand represents a student's application for a locker.
// Encapsulates the applicant's identifying data together with the acting
// principal, so the handler can enforce that students only file for themselves.
//
// Example:
//
//	cmd, err := NewCreateRequestCommand(actor, "2021630123", "Ana Torres", "5", "ana@alumno.ipn.mx", "5512345678")
//	if err != nil {
//	    return fmt.Errorf("invalid request data: %w", err)
//	}
//
//	handler := NewCreateRequestCommandHandler(uowFactory)
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create request: %w", err)
//	}
//	fmt.Printf("Created request with ID: %d", id)
type CreateRequestCommand struct { //nolint:recvcheck //using for validation
	actor    kernel.Principal
	boleta   string
	fullName string
	semester string
	email    string
	phone    string

	guard guard.ConstructorGuard
}

// NewCreateRequestCommand creates a command to file a new locker request.
// Field-level validation is deferred to the request aggregate; the command
// only requires an authenticated actor.
func NewCreateRequestCommand(
	actor kernel.Principal, boleta, fullName, semester, email, phone string,
) (CreateRequestCommand, error) {
	command := CreateRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setActor(actor); err != nil {
		return CreateRequestCommand{}, err
	}

	command.boleta = boleta
	command.fullName = fullName
	command.semester = semester
	command.email = email
	command.phone = phone

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateRequestCommandIsNotConstructed if validation fails.
func (c CreateRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateRequestCommandIsNotConstructed)
}

// Actor returns the authenticated principal issuing the command.
func (c CreateRequestCommand) Actor() kernel.Principal {
	return c.actor
}

// Boleta returns the applicant's student identifier.
func (c CreateRequestCommand) Boleta() string {
	return c.boleta
}

// FullName returns the applicant's full name.
func (c CreateRequestCommand) FullName() string {
	return c.fullName
}

// Semester returns the applicant's current semester.
func (c CreateRequestCommand) Semester() string {
	return c.semester
}

// Email returns the applicant's contact email.
func (c CreateRequestCommand) Email() string {
	return c.email
}

// Phone returns the applicant's contact phone.
func (c CreateRequestCommand) Phone() string {
	return c.phone
}

func (c *CreateRequestCommand) setActor(actor kernel.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
