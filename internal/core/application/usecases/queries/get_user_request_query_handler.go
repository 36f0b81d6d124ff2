package queries

import (
	"context"
	"database/sql"
	"errors"

	"lockers/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserRequestQueryHandler retrieves a user's most recent request.
type GetUserRequestQueryHandler struct {
	db *gorm.DB
}

// NewGetUserRequestQueryHandler creates a handler for per-user request lookups.
func NewGetUserRequestQueryHandler(db *gorm.DB) GetUserRequestQueryHandler {
	return GetUserRequestQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when the user has
// not filed a request yet, and errs.ErrForbidden when a student asks for
// another user's request.
func (h GetUserRequestQueryHandler) Handle(
	ctx context.Context,
	query GetUserRequestQuery,
) (RequestResponse, error) {
	if err := query.Validate(); err != nil {
		return RequestResponse{}, err
	}

	actor := query.Actor()
	if !actor.IsCoordinator() && query.UserID() != actor.UserID() {
		return RequestResponse{}, errs.NewForbiddenError("read another user's request")
	}

	var r RequestResponse
	var rejectionReason sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			boleta,
			full_name,
			semester,
			email,
			phone,
			status,
			rejection_reason
		FROM requests
		WHERE user_id = ?
		ORDER BY id DESC
		LIMIT 1
	`, query.UserID()).Row()

	err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.Boleta,
		&r.FullName,
		&r.Semester,
		&r.Email,
		&r.Phone,
		&r.Status,
		&rejectionReason,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return RequestResponse{}, errs.NewObjectNotFoundError("userID", query.UserID())
	}
	if err != nil {
		return RequestResponse{}, err
	}

	r.RejectionReason = rejectionReason.String
	return r, nil
}
