package order

import (
	"errors"
	"fmt"

	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/core/domain/model/product"
	"supermarket/internal/pkg/errs"
	"supermarket/internal/pkg/guard"
)

var (
	// ErrLineItemIsNotConstructed is returned when using an improperly initialized LineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
	// ErrLineItemNameIsRequired is returned when a line item is created without a display name.
	ErrLineItemNameIsRequired = errs.NewValueIsRequiredError("line item name")
)

// LineItem is a denormalized snapshot of one purchased product within an order.
// It captures the product reference, display name, unit price and requested
// quantity at order-creation time; later product edits do not affect it.
//
// LineItem is an immutable value object.
type LineItem struct {
	// productID references the product the snapshot was taken from
	productID kernel.UUID
	// name is the product display name at purchase time
	name string
	// unitType is the measurement unit at purchase time
	unitType product.UnitType
	// price is the unit price at purchase time
	price float64
	// quantity is the number of sale units requested
	quantity int
	// guard ensures the line item was properly constructed
	guard guard.ConstructorGuard
}

// NewLineItem creates a snapshot of a purchased product.
// Validates the product reference, name, unit type, price and quantity.
func NewLineItem(
	productID kernel.UUID,
	name string,
	unitType product.UnitType,
	price float64,
	quantity int,
) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setUnitType(unitType),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the LineItem was created through the constructor.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the reference to the purchased product.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Name returns the product display name captured at purchase time.
func (li LineItem) Name() string {
	return li.name
}

// UnitType returns the measurement unit captured at purchase time.
func (li LineItem) UnitType() product.UnitType {
	return li.unitType
}

// Price returns the unit price captured at purchase time.
func (li LineItem) Price() float64 {
	return li.price
}

// Quantity returns the number of sale units requested.
func (li LineItem) Quantity() int {
	return li.quantity
}

func (li *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setName(name string) error {
	if name == "" {
		return ErrLineItemNameIsRequired
	}
	li.name = name
	return nil
}

func (li *LineItem) setUnitType(unitType product.UnitType) error {
	if err := unitType.Validate(); err != nil {
		return err
	}
	li.unitType = unitType
	return nil
}

func (li *LineItem) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%v is not greater than 0", price),
		)
	}
	li.price = price
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	li.quantity = quantity
	return nil
}
