package queries

import (
	"errors"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/guard"
)

var (
	ErrGetRequestDocumentsQueryIsNotConstructed = errors.New(
		"GetRequestDocumentsQuery must be created via NewGetRequestDocumentsQuery constructor",
	)
	ErrRequestIDIsRequired = errors.New("request id is required")
)

// GetRequestDocumentsQuery lists the documents attached to a request.
type GetRequestDocumentsQuery struct {
	actor     kernel.Principal
	requestID uint64

	guard guard.ConstructorGuard
}

// NewGetRequestDocumentsQuery creates a query for a request's documents.
func NewGetRequestDocumentsQuery(actor kernel.Principal, requestID uint64) (GetRequestDocumentsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetRequestDocumentsQuery{}, err
	}
	if requestID == 0 {
		return GetRequestDocumentsQuery{}, ErrRequestIDIsRequired
	}

	return GetRequestDocumentsQuery{
		actor:     actor,
		requestID: requestID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRequestDocumentsQuery) Validate() error {
	return q.guard.Validate(ErrGetRequestDocumentsQueryIsNotConstructed)
}

// Actor returns the authenticated principal issuing the query.
func (q GetRequestDocumentsQuery) Actor() kernel.Principal {
	return q.actor
}

// RequestID returns the identifier of the request whose documents are listed.
func (q GetRequestDocumentsQuery) RequestID() uint64 {
	return q.requestID
}

// DocumentResponse represents an attached document in the read model.
type DocumentResponse struct {
	ID        uint64
	RequestID uint64
	DocType   string
	FileURL   string
}
