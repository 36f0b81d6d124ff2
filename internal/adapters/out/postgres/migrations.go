package postgres

import (
	"lockers/internal/adapters/out/postgres/assignmentrepo"
	"lockers/internal/adapters/out/postgres/documentrepo"
	"lockers/internal/adapters/out/postgres/lockerrepo"
	"lockers/internal/adapters/out/postgres/paymentrepo"
	"lockers/internal/adapters/out/postgres/requestrepo"
	"lockers/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every persisted table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&requestrepo.RequestDTO{},
		&documentrepo.DocumentDTO{},
		&paymentrepo.PaymentDTO{},
		&lockerrepo.LockerDTO{},
		&assignmentrepo.AssignmentDTO{},
	)
}
