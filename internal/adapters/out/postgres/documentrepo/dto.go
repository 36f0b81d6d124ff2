// Package documentrepo persists uploaded document references.
package documentrepo

import (
	"lockers/internal/core/domain/model/document"
)

// DocumentDTO represents the database structure for persisting documents.
type DocumentDTO struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	RequestID uint64 `gorm:"index;not null"`
	DocType   string `gorm:"not null"`
	FileURL   string `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "documents".
func (DocumentDTO) TableName() string {
	return "documents"
}

func fromDomain(aggregate *document.Document) DocumentDTO {
	return DocumentDTO{
		ID:        aggregate.ID(),
		RequestID: aggregate.RequestID(),
		DocType:   aggregate.DocType(),
		FileURL:   aggregate.FileURL(),
	}
}
