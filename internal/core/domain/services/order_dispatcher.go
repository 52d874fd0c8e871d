package services

import (
	"errors"

	"supermarket/internal/core/domain/model/driver"
	"supermarket/internal/core/domain/model/order"
)

// ErrDriverNotFound is returned when no suitable driver is available for order dispatch.
// This occurs when either no drivers are provided or none of the provided drivers
// is active and available.
var ErrDriverNotFound = errors.New("driver not found")

// OrderDispatcher is a domain service responsible for picking a driver for an
// unassigned order. It backs the background dispatch job; operator-driven
// assignment goes through the status-update flow directly.
//
// Selection policy: the active, non-deleted driver with the fewest completed
// deliveries wins, spreading the workload evenly. Ties go to the first driver
// in the provided slice.
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch finds the least-loaded available driver and assigns the order to it.
// Returns ErrDriverNotFound when no driver qualifies, or validation/assignment
// errors from the underlying aggregates.
func (d OrderDispatcher) Dispatch(o *order.Order, drivers []*driver.Driver) (*driver.Driver, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	best, err := d.findLeastLoadedDriver(drivers)
	if err != nil {
		return nil, err
	}

	if err = o.Assign(best.ID()); err != nil {
		return nil, err
	}

	return best, nil
}

// findLeastLoadedDriver scans the provided drivers for the active one with the
// fewest completed deliveries.
func (d OrderDispatcher) findLeastLoadedDriver(drivers []*driver.Driver) (*driver.Driver, error) {
	var best *driver.Driver

	for _, candidate := range drivers {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if candidate.IsDeleted() || candidate.Status() != driver.Active {
			continue
		}

		if best == nil || candidate.Deliveries() < best.Deliveries() {
			best = candidate
		}
	}

	if best == nil {
		return nil, ErrDriverNotFound
	}

	return best, nil
}
