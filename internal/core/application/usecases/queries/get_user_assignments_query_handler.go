package queries

import (
	"context"

	"lockers/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserAssignmentsQueryHandler lists a user's granted lockers by joining
// assignments back to the user through payment and request.
type GetUserAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetUserAssignmentsQueryHandler creates a handler for per-user assignment listings.
func NewGetUserAssignmentsQueryHandler(db *gorm.DB) GetUserAssignmentsQueryHandler {
	return GetUserAssignmentsQueryHandler{db: db}
}

// Handle executes the query. A user with no granted locker yields an empty slice.
func (h GetUserAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetUserAssignmentsQuery,
) ([]AssignmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if !actor.IsCoordinator() && query.UserID() != actor.UserID() {
		return nil, errs.NewForbiddenError("list another user's assignments")
	}

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
		JOIN payments p ON p.id = a.payment_id
		JOIN requests r ON r.id = p.request_id
		JOIN lockers l ON l.id = a.locker_id
		WHERE r.user_id = ?
		ORDER BY a.id DESC
	`, query.UserID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]AssignmentResponse, 0)
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
