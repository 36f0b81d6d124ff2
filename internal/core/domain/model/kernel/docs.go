// Package kernel contains the shared value objects of the domain model: the
// closed set of roles and the authenticated principal acting on the system.
// These types are used across every aggregate and use case, which is why they
// live in a shared kernel rather than inside a single aggregate package.
package kernel
