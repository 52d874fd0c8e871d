// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work spans one business transaction: repository operations
// obtained from it share a single database transaction, so multi-aggregate
// mutations (reserving stock for every order line, or incrementing a driver's
// delivery counter together with the order status write) commit or abort as one.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns its transaction state; concurrent operations
// must use separate instances obtained from the factory.
package postgres

import (
	"context"

	"supermarket/internal/adapters/out/postgres/driverrepo"
	"supermarket/internal/adapters/out/postgres/orderrepo"
	"supermarket/internal/adapters/out/postgres/productrepo"
	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Useful for implementing patterns like the outbox pattern or domain events.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a GORM database
// connection. Each business operation gets a fresh unit of work instance with
// proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations. Implements the Unit of Work pattern using GORM's
// transaction capabilities.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations execute within this transaction context.
// Calling Begin again on an active instance is a no-op, never a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// After rollback the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ProductRepository provides access to product persistence within the unit of work.
// Operations execute within the current transaction if one is active, otherwise
// they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return productrepo.NewGormProductRepository(db, uow)
}

// OrderRepository provides access to order persistence within the unit of work.
// Operations execute within the current transaction if one is active, otherwise
// they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// DriverRepository provides access to driver persistence within the unit of work.
// Operations execute within the current transaction if one is active, otherwise
// they use the main database connection for immediate execution.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return driverrepo.NewGormDriverRepository(db, uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of work.
// Called by repository implementations when aggregates are added or updated.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
