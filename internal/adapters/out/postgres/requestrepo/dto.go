// Package requestrepo provides data transfer objects and mapping functions for
// request persistence. Implements the repository pattern for the request
// aggregate, converting between domain entities and database rows.
package requestrepo

import (
	"lockers/internal/core/domain/model/request"
)

// RequestDTO represents the database structure for persisting request aggregates.
// The unique indexes on user_id and boleta carry the one-request-per-user and
// unique-boleta rules at the storage level, where they hold under concurrency.
type RequestDTO struct {
	ID              uint64 `gorm:"primaryKey;autoIncrement"`
	UserID          uint64 `gorm:"uniqueIndex;not null"`
	Boleta          string `gorm:"uniqueIndex;not null"`
	FullName        string `gorm:"not null"`
	Semester        string `gorm:"not null"`
	Email           string `gorm:"not null"`
	Phone           string `gorm:"not null"`
	Status          string `gorm:"not null"`
	RejectionReason string
}

// TableName overrides GORM's default naming to use "requests".
func (RequestDTO) TableName() string {
	return "requests"
}

func fromDomain(aggregate *request.Request) RequestDTO {
	return RequestDTO{
		ID:              aggregate.ID(),
		UserID:          aggregate.UserID(),
		Boleta:          aggregate.Boleta(),
		FullName:        aggregate.FullName(),
		Semester:        aggregate.Semester(),
		Email:           aggregate.Email(),
		Phone:           aggregate.Phone(),
		Status:          aggregate.Status().String(),
		RejectionReason: aggregate.RejectionReason(),
	}
}

func toDomain(dto RequestDTO) (*request.Request, error) {
	status, err := request.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return request.RestoreRequest(
		dto.ID,
		dto.UserID,
		dto.Boleta,
		dto.FullName,
		dto.Semester,
		dto.Email,
		dto.Phone,
		status,
		dto.RejectionReason,
	)
}
