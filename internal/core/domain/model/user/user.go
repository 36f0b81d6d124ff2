// Package user models an account in the locker workflow: an email identity,
// an opaque credential hash, and a role. Credential hashing itself happens in
// the auth adapter; the domain only stores the result.
package user

import (
	"errors"
	"strings"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is an account that may own a request (student) or run the workflow
// (coordinator).
type User struct {
	id           uint64
	email        string
	passwordHash string
	role         kernel.Role

	isConstructed bool
}

// NewUser creates a User with a unique email, a pre-hashed credential, and a role.
func NewUser(email, passwordHash string, role kernel.Role) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistence.
func RestoreUser(id uint64, email, passwordHash string, role kernel.Role) (*User, error) {
	u, err := NewUser(email, passwordHash, role)
	if err != nil {
		return nil, err
	}

	u.id = id
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// AssignID records the store-generated identifier after first persistence.
func (u *User) AssignID(id uint64) error {
	if u.id != 0 {
		return errs.NewValueIsInvalidError("user ID is already assigned")
	}
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}
	u.id = id
	return nil
}

// ID returns the user's identifier, 0 if not yet persisted.
func (u *User) ID() uint64 { return u.id }

// Email returns the user's unique email.
func (u *User) Email() string { return u.email }

// PasswordHash returns the opaque credential hash.
func (u *User) PasswordHash() string { return u.passwordHash }

// Role returns the user's role.
func (u *User) Role() kernel.Role { return u.role }

// Principal builds the authenticated principal this user acts as.
func (u *User) Principal() (kernel.Principal, error) {
	return kernel.NewPrincipal(u.id, u.role)
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
