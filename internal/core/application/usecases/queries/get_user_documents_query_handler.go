package queries

import (
	"context"

	"lockers/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserDocumentsQueryHandler lists a user's documents across all their requests.
type GetUserDocumentsQueryHandler struct {
	db *gorm.DB
}

// NewGetUserDocumentsQueryHandler creates a handler for per-user document listings.
func NewGetUserDocumentsQueryHandler(db *gorm.DB) GetUserDocumentsQueryHandler {
	return GetUserDocumentsQueryHandler{db: db}
}

// Handle executes the query. A user with no documents yields an empty slice.
func (h GetUserDocumentsQueryHandler) Handle(
	ctx context.Context,
	query GetUserDocumentsQuery,
) ([]DocumentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if !actor.IsCoordinator() && query.UserID() != actor.UserID() {
		return nil, errs.NewForbiddenError("list another user's documents")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.request_id,
			d.doc_type,
			d.file_url
		FROM documents d
		JOIN requests r ON r.id = d.request_id
		WHERE r.user_id = ?
		ORDER BY d.id
	`, query.UserID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	documents := make([]DocumentResponse, 0)
	for rows.Next() {
		var d DocumentResponse
		if err = rows.Scan(&d.ID, &d.RequestID, &d.DocType, &d.FileURL); err != nil {
			return nil, err
		}
		documents = append(documents, d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return documents, nil
}
