package kernel

import (
	"fmt"

	"supermarket/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID that
// bypassed the constructor functions.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the shared identifier value object for products, orders and drivers.
// It wraps github.com/google/uuid so the rest of the domain never handles the
// library type directly.
//
// The zero value is invalid; obtain instances through NewUUID, UUIDFromString
// or UUIDFromBytes. Values are immutable and safe to copy.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random version 4 identifier. Every aggregate gets its
// identity this way at creation time.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the canonical textual form, as received in request
// paths and payloads ("550e8400-e29b-41d4-a716-446655440000").
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes reconstructs an identifier from its 16-byte binary form, as
// stored in the database uuid columns. A nil UUID is rejected so restored
// aggregates can never carry an unconstructed identity.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form
// used in responses and log lines.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying uuid.UUID for persistence adapters. Slice it
// (u.Bytes()[:]) when a driver wants raw bytes.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two identifiers refer to the same aggregate.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero value. Aggregate
// constructors call this on every identifier they accept.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
