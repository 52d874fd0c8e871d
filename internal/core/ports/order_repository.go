package ports

import (
	"context"

	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Order rows are immutable after creation except for the status and
// assignment fields, which Update persists.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Only the mutable fields (status, assigned driver) ever change.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstUnassigned retrieves the oldest order still awaiting dispatch,
	// i.e. in New_Order or Pending status with no assigned driver.
	// Used by the background dispatch job.
	GetFirstUnassigned(ctx context.Context) (*order.Order, error)
}
