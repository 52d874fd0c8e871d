// Package driver provides domain entities and business logic for driver management
// in the supermarket backend. It implements the Driver aggregate root with
// availability status, soft deletion, and the completed-delivery counter.
//
// The package includes:
//   - Driver: The aggregate root that manages driver identity and delivery statistics
//   - Details: The grouped contact, license, vehicle, and identity fields
//   - Status: The active/inactive availability enumeration
//
// Key business rules:
//   - Drivers must have a valid identifier and complete contact details
//   - The deliveries counter is monotonically increasing, one increment per delivered order
//   - Soft-deleted drivers are excluded from all lookups but never physically removed
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package driver
