package queries

import (
	"context"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetAssignmentsQueryHandler lists all granted lockers with their holders.
type GetAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentsQueryHandler creates a handler for the assignment overview.
func NewGetAssignmentsQueryHandler(db *gorm.DB) GetAssignmentsQueryHandler {
	return GetAssignmentsQueryHandler{db: db}
}

// Handle executes the query. Only coordinators see the full overview.
func (h GetAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentsQuery,
) ([]AssignmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := services.NewAccessPolicy().Authorize(query.Actor(), kernel.Coordinator); err != nil {
		return nil, err
	}

	assignments := make([]AssignmentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.payment_id,
			a.locker_id,
			l.number,
			l.location,
			r.full_name,
			r.boleta,
			a.assigned_at
		FROM assignments a
		JOIN lockers l ON l.id = a.locker_id
		JOIN payments p ON p.id = a.payment_id
		JOIN requests r ON r.id = p.request_id
		ORDER BY a.id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var a AssignmentResponse
		err = rows.Scan(
			&a.ID,
			&a.PaymentID,
			&a.LockerID,
			&a.LockerNumber,
			&a.LockerLocation,
			&a.StudentName,
			&a.Boleta,
			&a.AssignedAt,
		)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
