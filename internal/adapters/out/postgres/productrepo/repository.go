package productrepo

import (
	"context"
	"errors"
	"fmt"

	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/core/domain/model/product"
	"supermarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing product to the database.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":        dto.Name,
		"price":       dto.Price,
		"unit_type":   dto.UnitType,
		"unit_value":  dto.UnitValue,
		"stock_count": dto.StockCount,
		"in_stock":    dto.InStock,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Reserve atomically decrements the product's stock by quantity.
// The availability check and the decrement run as one conditional UPDATE, so
// two requests racing for the last unit cannot both succeed: the row predicate
// re-checks stock_count under the row lock the statement takes. The in_stock
// flag is recomputed in the same statement.
func (r *GormProductRepository) Reserve(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	for {
		result := r.db.WithContext(ctx).Model(&ProductDTO{}).
			Where("id = ? AND stock_count >= ?", id.Bytes(), quantity).
			Updates(map[string]any{
				"stock_count": gorm.Expr("stock_count - ?", quantity),
				"in_stock":    gorm.Expr("stock_count - ? > 0", quantity),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}

		retry, err := r.classifyReserveFailure(ctx, id, quantity)
		if !retry {
			return err
		}
	}
}

// classifyReserveFailure reads the product after a rejected reservation to
// report the precise reason: missing product, empty stock, or a shortfall.
// The read runs outside the rejected UPDATE, so a concurrent restock may have
// landed in between and made the stock sufficient again; that case asks the
// caller to retry the reservation instead of reporting a stale shortfall.
func (r *GormProductRepository) classifyReserveFailure(
	ctx context.Context, id kernel.UUID, quantity int,
) (retry bool, err error) {
	aggregate, err := r.Get(ctx, id)
	if err != nil {
		return false, err
	}

	if aggregate.StockCount() >= quantity {
		return true, nil
	}

	if aggregate.StockCount() <= 0 {
		return false, product.NewOutOfStockError(aggregate.Name())
	}

	return false, product.NewInsufficientStockError(
		aggregate.Name(),
		aggregate.UnitType(),
		aggregate.StockCount(),
		quantity,
	)
}

// Release atomically increments the product's stock by quantity.
// Stock is never negative, so after any positive increment the product is in
// stock; the flag is set in the same statement.
func (r *GormProductRepository) Release(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"stock_count": gorm.Expr("stock_count + ?", quantity),
			"in_stock":    true,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}

	return nil
}
