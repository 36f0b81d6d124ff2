package queries

import (
	"errors"
	"time"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/guard"
)

var (
	ErrGetAssignmentCertificateQueryIsNotConstructed = errors.New(
		"GetAssignmentCertificateQuery must be created via NewGetAssignmentCertificateQuery constructor",
	)
	ErrAssignmentIDIsRequired = errors.New("assignmentID is required")
)

// GetAssignmentCertificateQuery produces the constancia for a granted locker:
// which locker, where, since when, and to whom. Students may only request the
// constancia of their own assignment.
type GetAssignmentCertificateQuery struct {
	actor        kernel.Principal
	assignmentID uint64

	guard guard.ConstructorGuard
}

// NewGetAssignmentCertificateQuery creates a query for an assignment's constancia.
func NewGetAssignmentCertificateQuery(actor kernel.Principal, assignmentID uint64) (GetAssignmentCertificateQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetAssignmentCertificateQuery{}, err
	}
	if assignmentID == 0 {
		return GetAssignmentCertificateQuery{}, ErrAssignmentIDIsRequired
	}

	return GetAssignmentCertificateQuery{
		actor:        actor,
		assignmentID: assignmentID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignmentCertificateQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentCertificateQueryIsNotConstructed)
}

// Actor returns the authenticated principal issuing the query.
func (q GetAssignmentCertificateQuery) Actor() kernel.Principal {
	return q.actor
}

// AssignmentID returns the identifier of the assignment being certified.
func (q GetAssignmentCertificateQuery) AssignmentID() uint64 {
	return q.assignmentID
}

// CertificateResponse carries the data printed on the constancia.
type CertificateResponse struct {
	StudentName    string
	Boleta         string
	LockerNumber   int
	LockerLocation string
	AssignedAt     time.Time
}
