package queries

import (
	"errors"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/guard"
)

var (
	ErrAuthenticateUserQueryIsNotConstructed = errors.New(
		"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
	)
	ErrEmailIsRequired    = errors.New("email is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// AuthenticateUserQuery checks login credentials. It is the only query that
// carries no principal: it is how a principal comes to exist.
type AuthenticateUserQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a credential check query.
func NewAuthenticateUserQuery(email, password string) (AuthenticateUserQuery, error) {
	if email == "" {
		return AuthenticateUserQuery{}, ErrEmailIsRequired
	}
	if password == "" {
		return AuthenticateUserQuery{}, ErrPasswordIsRequired
	}

	return AuthenticateUserQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Email returns the login email.
func (q AuthenticateUserQuery) Email() string {
	return q.email
}

// Password returns the plaintext password under check.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}

// AuthenticatedUserResponse identifies the user whose credentials checked out.
type AuthenticatedUserResponse struct {
	UserID uint64
	Email  string
	Role   kernel.Role
}
