package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetLockersQueryHandler lists the locker inventory ordered by number.
type GetLockersQueryHandler struct {
	db *gorm.DB
}

// NewGetLockersQueryHandler creates a handler for inventory listings.
func NewGetLockersQueryHandler(db *gorm.DB) GetLockersQueryHandler {
	return GetLockersQueryHandler{db: db}
}

// Handle executes the query. Any authenticated user may browse the inventory.
func (h GetLockersQueryHandler) Handle(
	ctx context.Context,
	query GetLockersQuery,
) ([]LockerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			id,
			number,
			location,
			available
		FROM lockers
		ORDER BY number
	`
	if query.OnlyAvailable() {
		stmt = `
			SELECT
				id,
				number,
				location,
				available
			FROM lockers
			WHERE available = TRUE
			ORDER BY number
		`
	}

	lockers := make([]LockerResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(stmt).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var l LockerResponse
		if err = rows.Scan(&l.ID, &l.Number, &l.Location, &l.Available); err != nil {
			return nil, err
		}
		lockers = append(lockers, l)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lockers, nil
}
