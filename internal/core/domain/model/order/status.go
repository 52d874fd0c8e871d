package order

import (
	"fmt"

	"supermarket/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so that orders follow
// the fulfillment workflow and delivery side effects fire exactly once.
//
// State transitions:
//
//	Created ──> Pending ──> Assigned ──> Delivered
//
// Any non-terminal status may also move directly to any other valid status;
// the preconditions for Assigned (driver reference supplied) and Delivered
// (driver already assigned) are enforced by the Order aggregate.
// Delivered is terminal.
//
// Status values are persisted and exposed over the API using their legacy
// string forms ("New_Order", "Pending", "Assigned", "Delivered").
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first recorded.
	// Exposed externally as "New_Order".
	Created

	// Pending indicates the order has been acknowledged and awaits dispatch.
	// Some flows record orders directly in this status.
	Pending

	// Assigned indicates the order has been assigned to a driver.
	Assigned

	// Delivered indicates the order has been delivered.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "New_Order",
		Pending:   "Pending",
		Assigned:  "Assigned",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "New_Order",
		Pending:   "Pending",
		Assigned:  "Assigned",
		Delivered: "Delivered",
	}
}

// StatusFromString parses a status from its external string form.
// Returns an error for any string outside the fixed enumeration, closing the
// free-form status strings of the legacy system into a checked type.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the external string form of the status.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Created/Pending -> Assigned (initial assignment)
//   - Assigned -> Assigned (reassignment to a different driver)
//
// Delivered orders cannot be reassigned.
func (s Status) Assign() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to assign", s),
		)
	}
	return Assigned, nil
}

// Deliver transitions the status to Delivered.
//
// Delivered is terminal: delivering an already delivered order is rejected,
// which also guarantees the driver delivery counter can never be incremented
// twice for the same order.
func (s Status) Deliver() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to deliver", s),
		)
	}
	return Delivered, nil
}

// ChangeTo transitions the status to an arbitrary valid target.
// Covers the unconditional moves of the state machine; Assigned and Delivered
// targets must go through Assign/Deliver so their preconditions apply.
// Delivered orders cannot change status.
func (s Status) ChangeTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is a terminal status", s),
		)
	}
	return target, nil
}
