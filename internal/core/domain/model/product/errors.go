package product

import (
	"errors"
	"fmt"
)

// Sentinel errors for stock violations. Use errors.Is to classify a rejection;
// the concrete error types below carry the details needed for user-facing messages.
var (
	// ErrOutOfStock indicates a product with no remaining stock.
	ErrOutOfStock = errors.New("product is out of stock")

	// ErrInsufficientStock indicates stock lower than the requested quantity.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// OutOfStockError is returned when a product has no units left to sell.
type OutOfStockError struct {
	ProductName string
}

// NewOutOfStockError creates an OutOfStockError for the named product.
func NewOutOfStockError(productName string) *OutOfStockError {
	return &OutOfStockError{ProductName: productName}
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("%s is out of stock.", e.ProductName)
}

func (e *OutOfStockError) Unwrap() error {
	return ErrOutOfStock
}

// InsufficientStockError is returned when the requested quantity exceeds the
// available stock. It identifies the offending product and the shortfall.
type InsufficientStockError struct {
	ProductName string
	Unit        UnitType
	Available   int
	Requested   int
}

// NewInsufficientStockError creates an InsufficientStockError for the named product.
func NewInsufficientStockError(productName string, unit UnitType, available, requested int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductName: productName,
		Unit:        unit,
		Available:   available,
		Requested:   requested,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Only %d %s available for %s.", e.Available, e.Unit, e.ProductName)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
