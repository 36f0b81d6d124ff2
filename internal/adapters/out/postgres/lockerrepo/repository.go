package lockerrepo

import (
	"context"
	"errors"

	"lockers/internal/core/domain/model/locker"
	"lockers/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLockerRepository implements LockerRepository using GORM.
type GormLockerRepository struct {
	db *gorm.DB
}

// NewGormLockerRepository creates a new GORM locker repository.
func NewGormLockerRepository(db *gorm.DB) *GormLockerRepository {
	return &GormLockerRepository{db: db}
}

// Add saves a new locker and feeds the generated identifier back into the
// aggregate. Duplicate locker numbers trip the unique index.
func (r *GormLockerRepository) Add(ctx context.Context, aggregate *locker.Locker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("number", dto.Number, err)
		}
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// Update saves the availability flag unconditionally. This is the manual
// override path; assignment goes through MarkUnavailable.
func (r *GormLockerRepository) Update(ctx context.Context, aggregate *locker.Locker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&LockerDTO{}).
		Where("id = ?", dto.ID).
		Update("available", dto.Available)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("lockerID", dto.ID)
	}

	return nil
}

// Delete removes a locker by ID.
func (r *GormLockerRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&LockerDTO{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("lockerID", id)
	}

	return nil
}

// Get retrieves a locker by ID.
func (r *GormLockerRepository) Get(ctx context.Context, id uint64) (*locker.Locker, error) {
	var dto LockerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("lockerID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// MarkUnavailable flips availability to false only if the locker is still
// available. When two transactions race for the same locker the second one
// matches zero rows here and gets a conflict, which must abort its
// transaction.
func (r *GormLockerRepository) MarkUnavailable(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).
		Model(&LockerDTO{}).
		Where("id = ? AND available = ?", id, true).
		Update("available", false)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("lockerID", id)
	}

	return nil
}
