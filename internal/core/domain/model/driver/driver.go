package driver

import (
	"errors"

	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/pkg/errs"
	"supermarket/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrDriverIsDeleted is returned when mutating a soft-deleted driver.
	ErrDriverIsDeleted = errors.New("driver is deleted")
)

// Details carries the identity and contact fields of a driver record.
// Grouped into a value struct because the record has too many required
// fields for a flat constructor signature.
type Details struct {
	Name          string
	Email         string
	Phone         string
	LicenseNumber string
	VehicleNumber string
	Address       string
	CNICNumber    string
}

// validate checks that every required detail field is present.
func (d Details) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"name", d.Name},
		{"email", d.Email},
		{"phone", d.Phone},
		{"licenseNumber", d.LicenseNumber},
		{"vehicleNumber", d.VehicleNumber},
		{"address", d.Address},
		{"cnicNumber", d.CNICNumber},
	}

	var err error
	for _, field := range required {
		if field.value == "" {
			err = errors.Join(err, errs.NewValueIsRequiredError(field.name))
		}
	}
	return err
}

// Driver is the aggregate root for a delivery driver.
// It owns the driver's identity and the monotonically increasing delivery
// counter, which is incremented exactly once per order that reaches the
// Delivered status. Drivers are soft-deleted: once the flag is set they are
// excluded from all lookups but the record remains.
type Driver struct {
	// id uniquely identifies the driver
	id kernel.UUID
	// details holds contact, license, vehicle and identity fields
	details Details
	// status reports whether the driver is available for dispatch
	status Status
	// deliveries counts completed deliveries, never decremented
	deliveries int
	// deleted marks the driver as removed from all lookups
	deleted bool
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates a new active Driver with zero completed deliveries.
func NewDriver(id kernel.UUID, details Details) (*Driver, error) {
	d := &Driver{
		status: Active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setDetails(details),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persisted state.
func RestoreDriver(id kernel.UUID, details Details, status Status, deliveries int, deleted bool) (*Driver, error) {
	d, err := NewDriver(id, details)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if deliveries < 0 {
		return nil, errs.NewValueIsInvalidError("deliveries")
	}

	d.status = status
	d.deliveries = deliveries
	d.deleted = deleted
	return d, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Details returns the driver's identity and contact fields.
func (d *Driver) Details() Details {
	return d.details
}

// Status returns the driver's availability status.
func (d *Driver) Status() Status {
	return d.status
}

// Deliveries returns the number of completed deliveries.
func (d *Driver) Deliveries() int {
	return d.deliveries
}

// IsDeleted reports whether the driver has been soft-deleted.
func (d *Driver) IsDeleted() bool {
	return d.deleted
}

// RecordDelivery increments the completed-delivery counter.
// Called by the dispatch flow when an order assigned to this driver reaches
// the Delivered status; the terminal state machine guarantees at most one
// call per order.
func (d *Driver) RecordDelivery() error {
	if d.deleted {
		return ErrDriverIsDeleted
	}
	d.deliveries++
	return nil
}

// Activate marks the driver as available for dispatch.
func (d *Driver) Activate() error {
	if d.deleted {
		return ErrDriverIsDeleted
	}
	d.status = Active
	return nil
}

// Deactivate marks the driver as temporarily unavailable.
func (d *Driver) Deactivate() error {
	if d.deleted {
		return ErrDriverIsDeleted
	}
	d.status = Inactive
	return nil
}

// MarkDeleted soft-deletes the driver, excluding it from all lookups.
// The underlying record is kept so historical orders stay resolvable.
func (d *Driver) MarkDeleted() {
	d.deleted = true
	d.status = Inactive
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setDetails(details Details) error {
	if err := details.validate(); err != nil {
		return err
	}
	d.details = details
	return nil
}
