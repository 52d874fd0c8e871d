package commands

import (
	"errors"

	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/pkg/guard"
)

var (
	ErrRestockProductCommandIsNotConstructed = errors.New(
		"RestockProductCommand must be created via NewRestockProductCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// RestockProductCommand represents a request to add stock to an existing product.
//
// Example:
//
//	cmd, err := NewRestockProductCommand(productID, 50)
//	if err != nil {
//	    return fmt.Errorf("invalid restock request: %w", err)
//	}
//
//	handler := NewRestockProductCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("restock failed: %w", err)
//	}
type RestockProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewRestockProductCommand creates a command to add stock to a product.
// Validates that the product ID is set and the quantity is positive.
func NewRestockProductCommand(productID kernel.UUID, quantity int) (RestockProductCommand, error) {
	command := RestockProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setQuantity(quantity),
	); err != nil {
		return RestockProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRestockProductCommandIsNotConstructed if validation fails.
func (c RestockProductCommand) Validate() error {
	return c.guard.Validate(ErrRestockProductCommandIsNotConstructed)
}

// ProductID returns the product ID from the command.
func (c RestockProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the stock quantity to add.
func (c RestockProductCommand) Quantity() int {
	return c.quantity
}

func (c *RestockProductCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.productID = id
	return nil
}

func (c *RestockProductCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
