// Package userrepo persists user accounts.
package userrepo

import (
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user accounts.
type UserDTO struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	role, err := kernel.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(dto.ID, dto.Email, dto.PasswordHash, role)
}
