package commands

import (
	"errors"

	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/core/domain/model/product"
	"supermarket/internal/pkg/guard"
)

var ErrAddProductCommandIsNotConstructed = errors.New(
	"AddProductCommand must be created via NewAddProductCommand constructor",
)

// AddProductCommand represents a request to add a new product to the catalog.
// Encapsulates the product's display data, its sale unit and its opening stock.
//
// Example:
//
//	cmd, err := NewAddProductCommand("Milk", 2.49, product.UnitLitre, 1, 40)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//
//	handler := NewAddProductCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type AddProductCommand struct { //nolint:recvcheck //using for validation
	productID  kernel.UUID
	name       string
	price      float64
	unitType   product.UnitType
	unitValue  float64
	stockCount int

	guard guard.ConstructorGuard
}

// NewAddProductCommand creates a command to add a product to the catalog.
// Automatically generates a unique ID for the product. Field validation is
// delegated to the aggregate constructor in the handler, so the command only
// checks the unit type here to fail fast on unparseable input.
func NewAddProductCommand(
	name string,
	price float64,
	unitType product.UnitType,
	unitValue float64,
	stockCount int,
) (AddProductCommand, error) {
	command := AddProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(kernel.NewUUID()),
		command.setUnitType(unitType),
	); err != nil {
		return AddProductCommand{}, err
	}

	command.name = name
	command.price = price
	command.unitValue = unitValue
	command.stockCount = stockCount

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddProductCommandIsNotConstructed if validation fails.
func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

// ProductID returns the generated product ID from the command.
func (c AddProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name from the command.
func (c AddProductCommand) Name() string {
	return c.name
}

// Price returns the product price from the command.
func (c AddProductCommand) Price() float64 {
	return c.price
}

// UnitType returns the sale unit type from the command.
func (c AddProductCommand) UnitType() product.UnitType {
	return c.unitType
}

// UnitValue returns the sale unit magnitude from the command.
func (c AddProductCommand) UnitValue() float64 {
	return c.unitValue
}

// StockCount returns the opening stock count from the command.
func (c AddProductCommand) StockCount() int {
	return c.stockCount
}

func (c *AddProductCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.productID = id
	return nil
}

func (c *AddProductCommand) setUnitType(unitType product.UnitType) error {
	if err := unitType.Validate(); err != nil {
		return err
	}

	c.unitType = unitType
	return nil
}
