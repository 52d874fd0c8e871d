// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the supermarket backend. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderValidator: checks a purchase request against live product stock
//   - OrderDispatcher: picks the least-loaded active driver for an unassigned order
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
