package services

import (
	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/core/domain/model/order"
	"supermarket/internal/core/domain/model/product"
	"supermarket/internal/pkg/errs"
)

// OrderValidator is a domain service that checks a purchase request against
// the current stock of every referenced product before anything is committed.
//
// Validation walks the line items in input order and fails on the first
// violation, so a rejection identifies exactly one offending item:
//   - the product no longer exists: ObjectNotFoundError
//   - the product has no stock left: OutOfStockError
//   - the stock is lower than the requested quantity: InsufficientStockError
//
// The validator never mutates state. Passing validation does not reserve
// anything: the commit phase must still reserve each line atomically, because
// stock can change between the two phases under concurrent requests.
type OrderValidator struct{}

// NewOrderValidator creates a new OrderValidator instance.
func NewOrderValidator() OrderValidator {
	return OrderValidator{}
}

// Validate checks every line item against the supplied product snapshots.
// The products map is keyed by product ID; a missing key means the product
// could not be found. Returns nil when every line can be fulfilled.
func (v OrderValidator) Validate(
	lineItems []order.LineItem,
	products map[kernel.UUID]*product.Product,
) error {
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}

		p, ok := products[item.ProductID()]
		if !ok {
			return errs.NewObjectNotFoundError("product", item.Name())
		}

		if err := p.Validate(); err != nil {
			return err
		}

		if err := p.CanReserve(item.Quantity()); err != nil {
			return err
		}
	}

	return nil
}
