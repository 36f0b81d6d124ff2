// Package paymentrepo persists payment aggregates.
package paymentrepo

import (
	"lockers/internal/core/domain/model/payment"
)

// PaymentDTO represents the database structure for persisting payment attempts.
// Rows are append-mostly: a retry is a new row, and the highest id per request
// is the current attempt.
type PaymentDTO struct {
	ID              uint64 `gorm:"primaryKey;autoIncrement"`
	RequestID       uint64 `gorm:"index;not null"`
	ProofURL        string `gorm:"not null"`
	Validated       bool   `gorm:"not null"`
	PayStatus       string `gorm:"not null"`
	RejectionReason string
}

// TableName overrides GORM's default naming to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:              aggregate.ID(),
		RequestID:       aggregate.RequestID(),
		ProofURL:        aggregate.ProofURL(),
		Validated:       aggregate.Validated(),
		PayStatus:       aggregate.PayStatus().String(),
		RejectionReason: aggregate.RejectionReason(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	payStatus, err := payment.PayStatusFromString(dto.PayStatus)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		dto.ID,
		dto.RequestID,
		dto.ProofURL,
		dto.Validated,
		payStatus,
		dto.RejectionReason,
	)
}
