// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: construction-time validation,
// role authorization, transaction management, and persistence.
package commands

import (
	"context"

	"lockers/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler declares the narrowest unit of work it needs so tests can mock
// exactly the repositories a command touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RequestRepoFactory provides access to the request repository within a transaction.
	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	// DocumentRepoFactory provides access to the document repository within a transaction.
	DocumentRepoFactory interface {
		DocumentRepository() ports.DocumentRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// LockerRepoFactory provides access to the locker repository within a transaction.
	LockerRepoFactory interface {
		LockerRepository() ports.LockerRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// RequestUoW manages transactions for request-only operations.
	RequestUoW interface {
		TxManager
		RequestRepoFactory
	}

	// RequestUoWFactory creates new request unit of work instances.
	RequestUoWFactory interface {
		Create() RequestUoW
	}

	// DocumentUoW manages transactions for document attachment, which checks
	// the owning request before inserting the document row.
	DocumentUoW interface {
		TxManager
		RequestRepoFactory
		DocumentRepoFactory
	}

	// DocumentUoWFactory creates new document unit of work instances.
	DocumentUoWFactory interface {
		Create() DocumentUoW
	}

	// PaymentUoW manages transactions for payment operations, which check the
	// owning request's state before touching payment rows.
	PaymentUoW interface {
		TxManager
		RequestRepoFactory
		PaymentRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// LockerUoW manages transactions for locker-only operations.
	LockerUoW interface {
		TxManager
		LockerRepoFactory
	}

	// LockerUoWFactory creates new locker unit of work instances.
	LockerUoWFactory interface {
		Create() LockerUoW
	}

	// AllocationUoW manages transactions across the payment, locker, and
	// assignment aggregates. Used by the assignment engine, where the
	// assignment insert and the locker availability flip must be atomic,
	// and by locker deletion, which checks for referencing assignments.
	AllocationUoW interface {
		TxManager
		PaymentRepoFactory
		LockerRepoFactory
		AssignmentRepoFactory
	}

	// AllocationUoWFactory creates new allocation unit of work instances.
	AllocationUoWFactory interface {
		Create() AllocationUoW
	}

	// CleanupUoW manages transactions for request deletion, which must verify
	// no payments or documents still reference the request.
	CleanupUoW interface {
		TxManager
		RequestRepoFactory
		PaymentRepoFactory
		DocumentRepoFactory
	}

	// CleanupUoWFactory creates new cleanup unit of work instances.
	CleanupUoWFactory interface {
		Create() CleanupUoW
	}

	// UserUoW manages transactions for user registration.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
