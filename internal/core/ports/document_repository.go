package ports

import (
	"context"

	"lockers/internal/core/domain/model/document"
)

// DocumentRepository persists document rows. Documents are append-only.
type DocumentRepository interface {
	// Add inserts a new document and assigns its store-generated identifier.
	Add(ctx context.Context, aggregate *document.Document) error

	// CountForRequest reports how many documents reference a request.
	CountForRequest(ctx context.Context, requestID uint64) (int64, error)
}
