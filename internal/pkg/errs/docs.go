// Package errs provides standardized error types for the locker allocation service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the full error taxonomy of the workflow core:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsTooLargeError: input problems
//   - UnauthenticatedError / ForbiddenError: identity and role problems
//   - ObjectNotFoundError: missing entities
//   - ConflictError: uniqueness violations and lost concurrent races
//   - PreconditionFailedError: entities not in the state an operation requires
//   - StorageError: object storage collaborator failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Transport adapters map the sentinels onto status codes in exactly one place,
// which keeps the command and query handlers free of HTTP concerns.
package errs
