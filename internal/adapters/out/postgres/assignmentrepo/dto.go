// Package assignmentrepo persists assignment records.
package assignmentrepo

import (
	"time"

	"lockers/internal/core/domain/model/assignment"
)

// AssignmentDTO represents the database structure for persisting assignments.
// The foreign keys to payments and lockers keep the paper trail intact: a
// referenced payment or locker cannot be deleted out from under a grant.
type AssignmentDTO struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	PaymentID  uint64    `gorm:"index;not null"`
	LockerID   uint64    `gorm:"index;not null"`
	AssignedAt time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "assignments".
func (AssignmentDTO) TableName() string {
	return "assignments"
}

func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:         aggregate.ID(),
		PaymentID:  aggregate.PaymentID(),
		LockerID:   aggregate.LockerID(),
		AssignedAt: aggregate.AssignedAt(),
	}
}

func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	return assignment.RestoreAssignment(dto.ID, dto.PaymentID, dto.LockerID, dto.AssignedAt)
}
