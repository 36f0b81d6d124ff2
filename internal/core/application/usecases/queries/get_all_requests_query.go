// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/guard"
)

var ErrGetAllRequestsQueryIsNotConstructed = errors.New(
	"GetAllRequestsQuery must be created via NewGetAllRequestsQuery constructor",
)

// GetAllRequestsQuery retrieves every locker request for the coordinator's
// review queue.
//
// Example:
//
//	query, err := NewGetAllRequestsQuery(actor)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetAllRequestsQueryHandler(db)
//	requests, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve requests: %w", err)
//	}
//
//	for _, r := range requests {
//	    fmt.Printf("#%d %s (%s): %s\n", r.ID, r.FullName, r.Boleta, r.Status)
//	}
type GetAllRequestsQuery struct {
	actor kernel.Principal

	guard guard.ConstructorGuard
}

// NewGetAllRequestsQuery creates a query to retrieve all requests.
func NewGetAllRequestsQuery(actor kernel.Principal) (GetAllRequestsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetAllRequestsQuery{}, err
	}

	return GetAllRequestsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRequestsQueryIsNotConstructed)
}

// Actor returns the authenticated principal issuing the query.
func (q GetAllRequestsQuery) Actor() kernel.Principal {
	return q.actor
}

// RequestResponse represents a locker request in the read model.
type RequestResponse struct {
	ID              uint64
	UserID          uint64
	Boleta          string
	FullName        string
	Semester        string
	Email           string
	Phone           string
	Status          string
	RejectionReason string
}
