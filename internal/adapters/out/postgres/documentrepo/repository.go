package documentrepo

import (
	"context"

	"lockers/internal/core/domain/model/document"

	"gorm.io/gorm"
)

// GormDocumentRepository implements DocumentRepository using GORM.
// Documents are insert-only; the file itself lives in object storage.
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a new GORM document repository.
func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

// Add saves a new document reference and feeds the generated identifier back
// into the aggregate.
func (r *GormDocumentRepository) Add(ctx context.Context, aggregate *document.Document) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// CountForRequest reports how many documents reference a request.
func (r *GormDocumentRepository) CountForRequest(ctx context.Context, requestID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&DocumentDTO{}).
		Where("request_id = ?", requestID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
