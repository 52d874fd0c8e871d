package product

import (
	"errors"
	"fmt"

	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/pkg/errs"
	"supermarket/internal/pkg/guard"
)

// Domain errors for product operations.
var (
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is the stock-bearing aggregate of the catalog.
// It owns the available quantity for one sellable item and keeps the derived
// inStock flag consistent with stockCount on every mutation, the same way the
// persistence hook of the legacy system did.
//
// Invariants:
//   - stockCount is never negative
//   - inStock is true iff stockCount > 0
//   - unitValue and price are positive
//   - can only be created through NewProduct or RestoreProduct
type Product struct {
	// id uniquely identifies the product
	id kernel.UUID
	// name is the display name shown on order line items
	name string
	// price is the unit price used for order snapshots
	price float64
	// unitType is the measurement unit the product is sold in
	unitType UnitType
	// unitValue is the amount of unitType one sale unit represents
	unitValue float64
	// stockCount is the number of sale units currently available
	stockCount int
	// inStock is derived from stockCount and recomputed on every change
	inStock bool
	// guard ensures the product was properly constructed
	guard guard.ConstructorGuard
}

// NewProduct creates a new Product with the specified parameters.
// Validates the identifier, name, price, unit type, unit value and initial
// stock count. The inStock flag is derived from the initial stock.
func NewProduct(
	id kernel.UUID,
	name string,
	price float64,
	unitType UnitType,
	unitValue float64,
	stockCount int,
) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setUnitType(unitType),
		p.setUnitValue(unitValue),
		p.setStockCount(stockCount),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persisted state.
// Used by repositories when loading aggregates from the database; the same
// validation rules as NewProduct apply.
func RestoreProduct(
	id kernel.UUID,
	name string,
	price float64,
	unitType UnitType,
	unitValue float64,
	stockCount int,
) (*Product, error) {
	return NewProduct(id, name, price, unitType, unitValue, stockCount)
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product's unit price.
func (p *Product) Price() float64 {
	return p.price
}

// UnitType returns the measurement unit the product is sold in.
func (p *Product) UnitType() UnitType {
	return p.unitType
}

// UnitValue returns the amount of UnitType one sale unit represents.
func (p *Product) UnitValue() float64 {
	return p.unitValue
}

// StockCount returns the number of sale units currently available.
func (p *Product) StockCount() int {
	return p.stockCount
}

// InStock reports whether the product has any stock left.
func (p *Product) InStock() bool {
	return p.inStock
}

// CanReserve checks whether the requested quantity could be reserved
// without mutating the aggregate. Returns nil when the full quantity is
// available, an OutOfStockError when nothing is left, and an
// InsufficientStockError when only part of the quantity is available.
func (p *Product) CanReserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if p.stockCount <= 0 {
		return NewOutOfStockError(p.name)
	}

	if p.stockCount < quantity {
		return NewInsufficientStockError(p.name, p.unitType, p.stockCount, quantity)
	}

	return nil
}

// Reserve decrements the available stock by the requested quantity.
// Fails without mutating the aggregate if the quantity is not fully available.
// The inStock flag is recomputed after the decrement.
func (p *Product) Reserve(quantity int) error {
	if err := p.CanReserve(quantity); err != nil {
		return err
	}

	return p.setStockCount(p.stockCount - quantity)
}

// Release returns previously reserved stock to the product.
// This is the compensating operation for Reserve and is also used by admin
// restocking. The inStock flag is recomputed after the increment.
func (p *Product) Release(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return p.setStockCount(p.stockCount + quantity)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%v is not greater than 0", price),
		)
	}
	p.price = price
	return nil
}

func (p *Product) setUnitType(unitType UnitType) error {
	if err := unitType.Validate(); err != nil {
		return err
	}
	p.unitType = unitType
	return nil
}

func (p *Product) setUnitValue(unitValue float64) error {
	if unitValue <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitValue",
			fmt.Errorf("%v is not greater than 0", unitValue),
		)
	}
	p.unitValue = unitValue
	return nil
}

// setStockCount is the single mutation point for stock. It rejects negative
// values and keeps inStock consistent with the new count.
func (p *Product) setStockCount(stockCount int) error {
	if stockCount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stockCount",
			fmt.Errorf("%d is negative", stockCount),
		)
	}
	p.stockCount = stockCount
	p.inStock = stockCount > 0
	return nil
}
