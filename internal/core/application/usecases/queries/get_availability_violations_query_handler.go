package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAvailabilityViolationsQueryHandler runs the availability audit.
type GetAvailabilityViolationsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailabilityViolationsQueryHandler creates a handler for the audit query.
func NewGetAvailabilityViolationsQueryHandler(db *gorm.DB) GetAvailabilityViolationsQueryHandler {
	return GetAvailabilityViolationsQueryHandler{db: db}
}

// Handle executes the audit. An empty slice means the inventory is consistent.
func (h GetAvailabilityViolationsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailabilityViolationsQuery,
) ([]AvailabilityViolationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	violations := make([]AvailabilityViolationResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.number,
			COUNT(a.id)
		FROM lockers l
		JOIN assignments a ON a.locker_id = l.id
		WHERE l.available = TRUE
		GROUP BY l.id, l.number
		ORDER BY l.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var v AvailabilityViolationResponse
		if err = rows.Scan(&v.LockerID, &v.LockerNumber, &v.Assignments); err != nil {
			return nil, err
		}
		violations = append(violations, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return violations, nil
}
