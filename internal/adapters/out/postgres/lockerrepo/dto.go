// Package lockerrepo persists locker aggregates.
package lockerrepo

import (
	"lockers/internal/core/domain/model/locker"
)

// LockerDTO represents the database structure for persisting lockers.
type LockerDTO struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	Number    int    `gorm:"uniqueIndex;not null"`
	Location  string `gorm:"not null"`
	Available bool   `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "lockers".
func (LockerDTO) TableName() string {
	return "lockers"
}

func fromDomain(aggregate *locker.Locker) LockerDTO {
	return LockerDTO{
		ID:        aggregate.ID(),
		Number:    aggregate.Number(),
		Location:  aggregate.Location(),
		Available: aggregate.Available(),
	}
}

func toDomain(dto LockerDTO) (*locker.Locker, error) {
	return locker.RestoreLocker(dto.ID, dto.Number, dto.Location, dto.Available)
}
