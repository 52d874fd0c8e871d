// Package ports defines repository interfaces for the supermarket domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates
// and acts as the stock ledger: it owns the per-product available quantity
// and exposes the atomic check-and-decrement and increment operations.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Reserve atomically decrements the product's stock by quantity.
	// The check and the decrement execute as a single conditional write, so
	// two concurrent reservations for the last unit cannot both succeed.
	// The persisted inStock flag is recomputed in the same write.
	//
	// Returns an ObjectNotFoundError when the product does not exist, an
	// OutOfStockError when no stock is left, and an InsufficientStockError
	// when less than quantity is available.
	Reserve(ctx context.Context, id kernel.UUID, quantity int) error

	// Release atomically increments the product's stock by quantity.
	// This is the compensating operation for Reserve and also serves admin
	// restocking. The persisted inStock flag is recomputed in the same write.
	Release(ctx context.Context, id kernel.UUID, quantity int) error
}
