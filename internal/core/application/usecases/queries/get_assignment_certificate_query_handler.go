package queries

import (
	"context"
	"database/sql"
	"errors"

	"lockers/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAssignmentCertificateQueryHandler resolves an assignment's constancia by
// walking payment, request, and locker in one join.
type GetAssignmentCertificateQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentCertificateQueryHandler creates a handler for constancia lookups.
func NewGetAssignmentCertificateQueryHandler(db *gorm.DB) GetAssignmentCertificateQueryHandler {
	return GetAssignmentCertificateQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound if the assignment
// is absent, and errs.ErrForbidden when a student asks for someone else's
// constancia.
func (h GetAssignmentCertificateQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentCertificateQuery,
) (CertificateResponse, error) {
	if err := query.Validate(); err != nil {
		return CertificateResponse{}, err
	}

	var c CertificateResponse
	var ownerID uint64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			r.user_id,
			r.full_name,
			r.boleta,
			l.number,
			l.location,
			a.assigned_at
		FROM assignments a
		JOIN payments p ON p.id = a.payment_id
		JOIN requests r ON r.id = p.request_id
		JOIN lockers l ON l.id = a.locker_id
		WHERE a.id = ?
	`, query.AssignmentID()).Row()

	err := row.Scan(&ownerID, &c.StudentName, &c.Boleta, &c.LockerNumber, &c.LockerLocation, &c.AssignedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return CertificateResponse{}, errs.NewObjectNotFoundError("assignmentID", query.AssignmentID())
	}
	if err != nil {
		return CertificateResponse{}, err
	}

	actor := query.Actor()
	if !actor.IsCoordinator() && ownerID != actor.UserID() {
		return CertificateResponse{}, errs.NewForbiddenError("read another user's constancia")
	}

	return c, nil
}
