package queries

import (
	"context"
	"database/sql"
	"errors"

	"lockers/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRequestDocumentsQueryHandler lists the documents attached to a request.
// Students see their own request's documents; coordinators see any.
type GetRequestDocumentsQueryHandler struct {
	db *gorm.DB
}

// NewGetRequestDocumentsQueryHandler creates a handler for document listings.
func NewGetRequestDocumentsQueryHandler(db *gorm.DB) GetRequestDocumentsQueryHandler {
	return GetRequestDocumentsQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when the request
// does not exist and errs.ErrForbidden when a student asks about someone
// else's request.
func (h GetRequestDocumentsQueryHandler) Handle(
	ctx context.Context,
	query GetRequestDocumentsQuery,
) ([]DocumentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var ownerID uint64
	row := h.db.WithContext(ctx).Raw(`
		SELECT user_id FROM requests WHERE id = ?
	`, query.RequestID()).Row()
	if err := row.Scan(&ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("requestID", query.RequestID())
		}
		return nil, err
	}

	if !query.Actor().IsCoordinator() && ownerID != query.Actor().UserID() {
		return nil, errs.NewForbiddenError("list documents of another user's request")
	}

	documents := make([]DocumentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			request_id,
			doc_type,
			file_url
		FROM documents
		WHERE request_id = ?
		ORDER BY id
	`, query.RequestID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

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
