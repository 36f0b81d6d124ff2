package paymentrepo

import (
	"context"
	"errors"

	"lockers/internal/core/domain/model/payment"
	"lockers/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Add saves a new payment attempt and feeds the generated identifier back
// into the aggregate.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// Update saves the review fields of an existing payment.
func (r *GormPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PaymentDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"validated":        dto.Validated,
			"pay_status":       dto.PayStatus,
			"rejection_reason": dto.RejectionReason,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("paymentID", dto.ID)
	}

	return nil
}

// Get retrieves a payment by ID.
func (r *GormPaymentRepository) Get(ctx context.Context, id uint64) (*payment.Payment, error) {
	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("paymentID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetLatestForRequest retrieves the current payment attempt of a request.
func (r *GormPaymentRepository) GetLatestForRequest(ctx context.Context, requestID uint64) (*payment.Payment, error) {
	var dto PaymentDTO
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("id DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("requestID", requestID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// CountForRequest reports how many payment attempts a request has.
func (r *GormPaymentRepository) CountForRequest(ctx context.Context, requestID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PaymentDTO{}).
		Where("request_id = ?", requestID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
