// Package order provides domain entities and business logic for order management
// in the supermarket backend. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, and lifecycle
//   - LineItem: An immutable snapshot of one purchased product
//   - Pricing: The monetary fields captured at checkout
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid identifier, purchaser, address, and at least one line item
//   - Order status follows a defined workflow: New_Order -> Pending -> Assigned -> Delivered
//   - Assignment requires a driver reference; delivery requires a prior assignment
//   - Delivered is terminal, so delivery side effects can fire at most once
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
