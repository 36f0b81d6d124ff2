package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetPaymentHistoryQueryHandler lists every payment attempt of a request.
type GetPaymentHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentHistoryQueryHandler creates a handler for payment history lookups.
func NewGetPaymentHistoryQueryHandler(db *gorm.DB) GetPaymentHistoryQueryHandler {
	return GetPaymentHistoryQueryHandler{db: db}
}

// Handle executes the query, newest attempt first.
func (h GetPaymentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentHistoryQuery,
) ([]PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := authorizeRequestAccess(ctx, h.db, query.Actor(), query.RequestID()); err != nil {
		return nil, err
	}

	payments := make([]PaymentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
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
	`, query.RequestID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p PaymentResponse
		var rejectionReason sql.NullString

		err = rows.Scan(&p.ID, &p.RequestID, &p.ProofURL, &p.Validated, &p.PayStatus, &rejectionReason)
		if err != nil {
			return nil, err
		}

		p.RejectionReason = rejectionReason.String
		payments = append(payments, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
