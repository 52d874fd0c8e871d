package ports

import (
	"context"

	"supermarket/internal/core/domain/model/driver"
	"supermarket/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
// Soft-deleted drivers are excluded from every lookup.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	// Soft-deleted drivers resolve as not found.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllActive retrieves all active, non-deleted drivers,
	// least-loaded (fewest completed deliveries) first.
	GetAllActive(ctx context.Context) ([]*driver.Driver, error)

	// IncrementDeliveries atomically adds one to the driver's completed
	// delivery counter. The increment is a single conditional write rather
	// than a read-modify-write, so concurrent delivery completions for the
	// same driver cannot lose updates.
	IncrementDeliveries(ctx context.Context, id kernel.UUID) error
}
