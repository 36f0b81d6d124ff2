package queries

import (
	"context"
	"database/sql"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetAllRequestsQueryHandler retrieves all locker requests from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllRequestsQueryHandler creates a handler for the request review queue.
func NewGetAllRequestsQueryHandler(db *gorm.DB) GetAllRequestsQueryHandler {
	return GetAllRequestsQueryHandler{db: db}
}

// Handle executes the query to retrieve all requests, newest first.
// Only coordinators see the full queue.
func (h GetAllRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetAllRequestsQuery,
) ([]RequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := services.NewAccessPolicy().Authorize(query.Actor(), kernel.Coordinator); err != nil {
		return nil, err
	}

	requests := make([]RequestResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		ORDER BY id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r RequestResponse
		var rejectionReason sql.NullString

		err = rows.Scan(
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
		if err != nil {
			return nil, err
		}

		r.RejectionReason = rejectionReason.String
		requests = append(requests, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
