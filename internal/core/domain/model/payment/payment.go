// Package payment models a fee payment proof tied to an approved request.
// A request may accumulate several payment attempts; the one with the highest
// identifier is the current one. A payment starts unvalidated and ends either
// validated-paid (ready for assignment) or validated-rejected.
package payment

import (
	"errors"
	"strings"

	"lockers/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not created
// through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment is a proof-of-payment submission for a request.
type Payment struct {
	id        uint64
	requestID uint64

	// proofURL is the content-addressed reference the storage collaborator returned.
	proofURL string

	validated       bool
	payStatus       PayStatus
	rejectionReason string

	isConstructed bool
}

// NewPayment creates an unvalidated Payment for the given request.
func NewPayment(requestID uint64, proofURL string) (*Payment, error) {
	p := &Payment{
		payStatus:     Unpaid,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setRequestID(requestID),
		p.setProofURL(proofURL),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a Payment from persistence.
func RestorePayment(
	id, requestID uint64,
	proofURL string,
	validated bool,
	payStatus PayStatus,
	rejectionReason string,
) (*Payment, error) {
	if err := payStatus.Validate(); err != nil {
		return nil, err
	}

	return &Payment{
		id:              id,
		requestID:       requestID,
		proofURL:        proofURL,
		validated:       validated,
		payStatus:       payStatus,
		rejectionReason: rejectionReason,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// AssignID records the store-generated identifier after first persistence.
func (p *Payment) AssignID(id uint64) error {
	if p.id != 0 {
		return errs.NewValueIsInvalidError("payment ID is already assigned")
	}
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}
	p.id = id
	return nil
}

// ID returns the payment's identifier, 0 if not yet persisted.
func (p *Payment) ID() uint64 { return p.id }

// RequestID returns the identifier of the owning request.
func (p *Payment) RequestID() uint64 { return p.requestID }

// ProofURL returns the stored proof reference.
func (p *Payment) ProofURL() string { return p.proofURL }

// Validated reports whether a coordinator has reviewed this payment.
func (p *Payment) Validated() bool { return p.validated }

// PayStatus returns the coordinator's verdict.
func (p *Payment) PayStatus() PayStatus { return p.payStatus }

// RejectionReason returns the coordinator's reason, empty unless rejected.
func (p *Payment) RejectionReason() string { return p.rejectionReason }

// Decide records the coordinator's review in one step: the validation flag,
// the verdict, and the optional reason all change together so the three fields
// can never disagree.
func (p *Payment) Decide(validated bool, payStatus PayStatus, reason string) error {
	if err := payStatus.Validate(); err != nil {
		return err
	}

	p.validated = validated
	p.payStatus = payStatus
	if payStatus == Paid {
		p.rejectionReason = ""
	} else {
		p.rejectionReason = strings.TrimSpace(reason)
	}
	return nil
}

// IsApprovedForAssignment reports whether this payment can back a locker
// assignment: the coordinator validated it and confirmed it as paid.
func (p *Payment) IsApprovedForAssignment() bool {
	return p.validated && p.payStatus == Paid
}

func (p *Payment) setRequestID(requestID uint64) error {
	if requestID == 0 {
		return errs.NewValueIsRequiredError("requestID")
	}
	p.requestID = requestID
	return nil
}

func (p *Payment) setProofURL(proofURL string) error {
	if strings.TrimSpace(proofURL) == "" {
		return errs.NewValueIsRequiredError("proofURL")
	}
	p.proofURL = proofURL
	return nil
}
