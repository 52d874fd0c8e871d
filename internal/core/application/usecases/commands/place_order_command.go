package commands

import (
	"errors"

	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/core/domain/model/order"
	"supermarket/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrAddressIsRequired = errors.New("address is required")
	ErrLineItemsAreEmpty = errors.New("at least one line item is required")
)

// PlaceOrderCommand represents a request to place a multi-item purchase.
// Carries the purchaser identity, delivery address, the line item snapshots in
// submission order, the checkout pricing, and an optional delivery date.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(orderID, customerID, "12 Canal Road", items, pricing, "25-12-2026")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	address      string
	lineItems    []order.LineItem
	pricing      order.Pricing
	deliveryDate string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new purchase.
// Validates the order and purchaser identifiers, the address, every line item
// and the pricing snapshot. Returns an error if any validation fails.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	address string,
	lineItems []order.LineItem,
	pricing order.Pricing,
	deliveryDate string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setAddress(address),
		cmd.setLineItems(lineItems),
		cmd.setPricing(pricing),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.deliveryDate = deliveryDate
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the order being placed.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the purchaser reference.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Address returns the delivery address.
func (c PlaceOrderCommand) Address() string {
	return c.address
}

// LineItems returns the purchased product snapshots in submission order.
func (c PlaceOrderCommand) LineItems() []order.LineItem {
	return c.lineItems
}

// Pricing returns the checkout pricing snapshot.
func (c PlaceOrderCommand) Pricing() order.Pricing {
	return c.pricing
}

// DeliveryDate returns the requested delivery day, empty when none was given.
func (c PlaceOrderCommand) DeliveryDate() string {
	return c.deliveryDate
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}

func (c *PlaceOrderCommand) setLineItems(lineItems []order.LineItem) error {
	if len(lineItems) == 0 {
		return ErrLineItemsAreEmpty
	}
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.lineItems = lineItems
	return nil
}

func (c *PlaceOrderCommand) setPricing(pricing order.Pricing) error {
	if err := pricing.Validate(); err != nil {
		return err
	}
	c.pricing = pricing
	return nil
}
