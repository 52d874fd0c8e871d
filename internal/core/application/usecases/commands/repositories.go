// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"supermarket/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// ProductUoW manages transactions for product-only operations.
	// Used by commands that only touch the product catalog and stock ledger.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// OrderUoW manages transactions for order placement.
	// Placement validates and reserves stock for every line and persists the
	// order inside one transaction, so it spans products and orders.
	OrderUoW interface {
		TxManager
		ProductRepoFactory
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DispatchUoW manages transactions for order status transitions.
	// The Delivered transition mutates the order and the driver delivery
	// counter together, so it spans orders and drivers.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}
)
