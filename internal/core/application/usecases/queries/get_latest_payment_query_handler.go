package queries

import (
	"context"
	"database/sql"
	"errors"

	"lockers/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetLatestPaymentQueryHandler retrieves the current payment attempt of a request.
type GetLatestPaymentQueryHandler struct {
	db *gorm.DB
}

// NewGetLatestPaymentQueryHandler creates a handler for current-payment lookups.
func NewGetLatestPaymentQueryHandler(db *gorm.DB) GetLatestPaymentQueryHandler {
	return GetLatestPaymentQueryHandler{db: db}
}

// Handle executes the query. Students may only ask about their own request.
// Returns errs.ErrObjectNotFound when the request has no payments.
func (h GetLatestPaymentQueryHandler) Handle(
	ctx context.Context,
	query GetLatestPaymentQuery,
) (PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return PaymentResponse{}, err
	}

	if err := authorizeRequestAccess(ctx, h.db, query.Actor(), query.RequestID()); err != nil {
		return PaymentResponse{}, err
	}

	var p PaymentResponse
	var rejectionReason sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			request_id,
			proof_url,
			validated,
			pay_status,
			rejection_reason
		FROM payments
		WHERE request_id = ?
		ORDER BY id DESC
		LIMIT 1
	`, query.RequestID()).Row()

	err := row.Scan(&p.ID, &p.RequestID, &p.ProofURL, &p.Validated, &p.PayStatus, &rejectionReason)
	if errors.Is(err, sql.ErrNoRows) {
		return PaymentResponse{}, errs.NewObjectNotFoundError("requestID", query.RequestID())
	}
	if err != nil {
		return PaymentResponse{}, err
	}

	p.RejectionReason = rejectionReason.String
	return p, nil
}
