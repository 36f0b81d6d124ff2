package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/ports"
	"lockers/internal/pkg/errs"

	"gorm.io/gorm"
)

// AuthenticateUserQueryHandler verifies login credentials against the stored
// hash. Unknown email and wrong password both surface as the same
// errs.ErrUnauthenticated, so the response never reveals which one it was.
type AuthenticateUserQueryHandler struct {
	db     *gorm.DB
	hasher ports.PasswordHasher
}

// NewAuthenticateUserQueryHandler creates a handler for credential checks.
func NewAuthenticateUserQueryHandler(db *gorm.DB, hasher ports.PasswordHasher) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{db: db, hasher: hasher}
}

// Handle executes the credential check.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticatedUserResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticatedUserResponse{}, err
	}

	var userID uint64
	var email, passwordHash, roleName string

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, email, password_hash, role
		FROM users
		WHERE email = ?
	`, strings.ToLower(query.Email())).Row()

	err := row.Scan(&userID, &email, &passwordHash, &roleName)
	if errors.Is(err, sql.ErrNoRows) {
		return AuthenticatedUserResponse{}, errs.NewUnauthenticatedError("invalid credentials")
	}
	if err != nil {
		return AuthenticatedUserResponse{}, err
	}

	if err = h.hasher.Compare(passwordHash, query.Password()); err != nil {
		return AuthenticatedUserResponse{}, errs.NewUnauthenticatedErrorWithCause("invalid credentials", err)
	}

	role, err := kernel.RoleFromString(roleName)
	if err != nil {
		return AuthenticatedUserResponse{}, err
	}

	return AuthenticatedUserResponse{
		UserID: userID,
		Email:  email,
		Role:   role,
	}, nil
}
