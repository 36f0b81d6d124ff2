package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"lockers/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetProcessStatusQueryHandler builds the journey projection stage by stage,
// stopping at the first stage with no data.
type GetProcessStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetProcessStatusQueryHandler creates a handler for process status lookups.
func NewGetProcessStatusQueryHandler(db *gorm.DB) GetProcessStatusQueryHandler {
	return GetProcessStatusQueryHandler{db: db}
}

// Handle executes the query. An empty response (all nil) means the user has
// not filed a request yet; that is an answer, not an error. Looking up a
// different user requires the coordinator role, and an unknown target user
// surfaces as errs.ErrObjectNotFound.
func (h GetProcessStatusQueryHandler) Handle(
	ctx context.Context,
	query GetProcessStatusQuery,
) (ProcessStatusResponse, error) {
	if err := query.Validate(); err != nil {
		return ProcessStatusResponse{}, err
	}

	actor := query.Actor()
	if query.TargetUserID() != actor.UserID() && !actor.IsCoordinator() {
		return ProcessStatusResponse{}, errs.NewForbiddenError("read another user's process status")
	}

	if query.VerifyUser() {
		var exists bool
		row := h.db.WithContext(ctx).Raw(`
			SELECT EXISTS (SELECT 1 FROM users WHERE id = ?)
		`, query.TargetUserID()).Row()
		if err := row.Scan(&exists); err != nil {
			return ProcessStatusResponse{}, err
		}
		if !exists {
			return ProcessStatusResponse{}, errs.NewObjectNotFoundError("userID", query.TargetUserID())
		}
	}

	response := ProcessStatusResponse{Documents: make([]DocumentResponse, 0)}

	var requestID uint64
	var status string
	var rejectionReason sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, status, rejection_reason
		FROM requests
		WHERE user_id = ?
		ORDER BY id DESC
		LIMIT 1
	`, query.TargetUserID()).Row()
	err := row.Scan(&requestID, &status, &rejectionReason)
	if errors.Is(err, sql.ErrNoRows) {
		return response, nil
	}
	if err != nil {
		return ProcessStatusResponse{}, err
	}

	response.RequestID = &requestID
	response.RequestStatus = &status
	if rejectionReason.Valid {
		response.RejectionReason = &rejectionReason.String
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, request_id, doc_type, file_url
		FROM documents
		WHERE request_id = ?
		ORDER BY id
	`, requestID).Rows()
	if err != nil {
		return ProcessStatusResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var d DocumentResponse
		if err = rows.Scan(&d.ID, &d.RequestID, &d.DocType, &d.FileURL); err != nil {
			return ProcessStatusResponse{}, err
		}
		response.Documents = append(response.Documents, d)
	}
	if err = rows.Err(); err != nil {
		return ProcessStatusResponse{}, err
	}

	var paymentID uint64
	var validated bool
	var payStatus string
	var payReason sql.NullString

	row = h.db.WithContext(ctx).Raw(`
		SELECT id, validated, pay_status, rejection_reason
		FROM payments
		WHERE request_id = ?
		ORDER BY id DESC
		LIMIT 1
	`, requestID).Row()
	err = row.Scan(&paymentID, &validated, &payStatus, &payReason)
	if errors.Is(err, sql.ErrNoRows) {
		return response, nil
	}
	if err != nil {
		return ProcessStatusResponse{}, err
	}

	response.PaymentValidated = &validated
	response.PaymentStatus = &payStatus
	if payReason.Valid {
		response.PaymentReason = &payReason.String
	}

	var number int
	var location string
	var assignedAt time.Time

	row = h.db.WithContext(ctx).Raw(`
		SELECT l.number, l.location, a.assigned_at
		FROM assignments a
		JOIN lockers l ON l.id = a.locker_id
		WHERE a.payment_id = ?
		ORDER BY a.id DESC
		LIMIT 1
	`, paymentID).Row()
	err = row.Scan(&number, &location, &assignedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return response, nil
	}
	if err != nil {
		return ProcessStatusResponse{}, err
	}

	response.LockerNumber = &number
	response.LockerLocation = &location
	response.AssignedAt = &assignedAt

	return response, nil
}
