// Package services contains stateless domain services: logic that spans more
// than one aggregate and therefore belongs to none of them.
//
//   - AccessPolicy authorizes a principal against the closed set of roles.
//   - LockerAllocator decides whether a payment and a locker may be bound into
//     an assignment, and performs the binding on the in-memory aggregates.
//
// Both services are pure: persistence and transaction control stay with the
// command handlers that invoke them.
package services
