package request

import (
	"errors"
	"strings"

	"lockers/internal/pkg/errs"
)

// ErrRequestIsNotConstructed is returned when a Request instance was not created
// through NewRequest or RestoreRequest. This ensures all requests are validated.
var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

// Request is a student's application for a locker. It is the aggregate root of
// the request lifecycle and the anchor every downstream entity (document,
// payment, assignment) hangs off.
//
// Request invariants:
//   - Every contact field is mandatory at creation
//   - The boleta (ticket number) is globally unique (enforced by the store)
//   - A user owns at most one request (enforced by the store)
//   - Status moves Pending -> Approved | Rejected; decisions may be overwritten
//
// The identifier is assigned by the store on first persistence; a Request with
// ID 0 has not been persisted yet.
type Request struct {
	id     uint64
	userID uint64

	// boleta is the student's ticket number, globally unique.
	boleta string

	fullName string
	semester string
	email    string
	phone    string

	status          Status
	rejectionReason string

	isConstructed bool
}

// NewRequest creates a pending Request after validating every mandatory field.
// The returned aggregate has no identifier until the store assigns one.
func NewRequest(userID uint64, boleta, fullName, semester, email, phone string) (*Request, error) {
	r := &Request{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setUserID(userID),
		r.setBoleta(boleta),
		r.setFullName(fullName),
		r.setSemester(semester),
		r.setEmail(email),
		r.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRequest reconstructs a Request from persistence without re-running
// creation validation, but still checking the stored status is legal.
func RestoreRequest(
	id, userID uint64,
	boleta, fullName, semester, email, phone string,
	status Status,
	rejectionReason string,
) (*Request, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Request{
		id:              id,
		userID:          userID,
		boleta:          boleta,
		fullName:        fullName,
		semester:        semester,
		email:           email,
		phone:           phone,
		status:          status,
		rejectionReason: rejectionReason,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Request instance was properly constructed.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// AssignID records the store-generated identifier after first persistence.
// A request's identity is assigned exactly once.
func (r *Request) AssignID(id uint64) error {
	if r.id != 0 {
		return errs.NewValueIsInvalidError("request ID is already assigned")
	}
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}
	r.id = id
	return nil
}

// ID returns the request's identifier, 0 if not yet persisted.
func (r *Request) ID() uint64 { return r.id }

// UserID returns the identifier of the owning user.
func (r *Request) UserID() uint64 { return r.userID }

// Boleta returns the student's ticket number.
func (r *Request) Boleta() string { return r.boleta }

// FullName returns the student's full name.
func (r *Request) FullName() string { return r.fullName }

// Semester returns the student's current semester.
func (r *Request) Semester() string { return r.semester }

// Email returns the student's personal email.
func (r *Request) Email() string { return r.email }

// Phone returns the student's phone number.
func (r *Request) Phone() string { return r.phone }

// Status returns the current lifecycle status.
func (r *Request) Status() Status { return r.status }

// RejectionReason returns the coordinator's reason, empty unless rejected.
func (r *Request) RejectionReason() string { return r.rejectionReason }

// IsApproved reports whether the request has been approved, which is the
// precondition for accepting a payment proof.
func (r *Request) IsApproved() bool {
	return r.status == Approved
}

// IsOwnedBy reports whether the given user owns this request.
func (r *Request) IsOwnedBy(userID uint64) bool {
	return r.userID == userID
}

// Decide records a coordinator decision. Only Approved and Rejected are legal
// targets; re-deciding an already decided request overwrites the previous
// decision. The reason is kept only for rejections.
func (r *Request) Decide(decision Status, reason string) error {
	if err := decision.ValidateDecision(); err != nil {
		return err
	}

	r.status = decision
	if decision == Rejected {
		r.rejectionReason = strings.TrimSpace(reason)
	} else {
		r.rejectionReason = ""
	}
	return nil
}

func (r *Request) setUserID(userID uint64) error {
	if userID == 0 {
		return errs.NewValueIsRequiredError("userID")
	}
	r.userID = userID
	return nil
}

func (r *Request) setBoleta(boleta string) error {
	if strings.TrimSpace(boleta) == "" {
		return errs.NewValueIsRequiredError("boleta")
	}
	r.boleta = strings.TrimSpace(boleta)
	return nil
}

func (r *Request) setFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	r.fullName = strings.TrimSpace(fullName)
	return nil
}

func (r *Request) setSemester(semester string) error {
	if strings.TrimSpace(semester) == "" {
		return errs.NewValueIsRequiredError("semester")
	}
	r.semester = strings.TrimSpace(semester)
	return nil
}

func (r *Request) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	r.email = email
	return nil
}

func (r *Request) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	r.phone = strings.TrimSpace(phone)
	return nil
}
