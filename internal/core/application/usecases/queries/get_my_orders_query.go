// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/pkg/guard"
)

var ErrGetMyOrdersQueryIsNotConstructed = errors.New(
	"GetMyOrdersQuery must be created via NewGetMyOrdersQuery constructor",
)

// GetMyOrdersQuery retrieves a customer's order history.
// Returns every order the customer has placed, newest first, with line item
// snapshots and a contact snapshot of the purchaser.
//
// Example:
//
//	query, err := NewGetMyOrdersQuery(customerID)
//	if err != nil {
//	    return fmt.Errorf("invalid customer ID: %w", err)
//	}
//
//	handler := NewGetMyOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetMyOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMyOrdersQuery creates a query for one customer's orders.
func NewGetMyOrdersQuery(customerID kernel.UUID) (GetMyOrdersQuery, error) {
	query := GetMyOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCustomerID(customerID); err != nil {
		return GetMyOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMyOrdersQueryIsNotConstructed if validation fails.
func (q GetMyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMyOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer ID from the query.
func (q GetMyOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q *GetMyOrdersQuery) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.customerID = id
	return nil
}

// PurchaserResponse is the contact snapshot of the customer who placed an
// order. Only name and contact fields are exposed; credentials never leave
// the database.
type PurchaserResponse struct {
	Name  string
	Email string
	Phone string
}

// LineItemResponse represents one purchased product snapshot in the read model.
type LineItemResponse struct {
	ProductID kernel.UUID
	Name      string
	UnitType  string
	Price     float64
	Quantity  int
}

// GetMyOrdersQueryResponse represents one order in the customer's history.
type GetMyOrdersQueryResponse struct {
	ID             kernel.UUID
	Address        string
	LineItems      []LineItemResponse
	Subtotal       float64
	HasDiscount    bool
	Discount       float64
	DeliveryCharge float64
	TotalPrice     float64
	DeliveryDate   string
	Status         string
	Purchaser      PurchaserResponse
}
