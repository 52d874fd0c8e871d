package commands

import (
	"context"
	"errors"

	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/core/domain/model/order"
	"supermarket/internal/core/domain/model/product"
	"supermarket/internal/core/domain/services"
	"supermarket/internal/core/ports"
	"supermarket/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
//
// The whole operation runs inside one transaction:
//  1. load every referenced product
//  2. validate all line items in submission order without mutating anything
//  3. reserve stock for each line through the ledger's atomic conditional decrement
//  4. persist the order
//
// Step 2 rejects an order that cannot be fulfilled before any stock moves.
// Step 3 re-checks each line under the row lock of the conditional UPDATE, so
// a request that raced past validation still cannot oversell; its failure
// rolls the transaction back, releasing every earlier reservation.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	validator  services.OrderValidator
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewOrderValidator(),
	}
}

// Handle processes the order placement command.
// Returns the persisted order on success, or a rejection identifying the
// first offending line item. On any error no product's stock is modified.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()

	products, err := h.loadProducts(ctx, productRepo, cmd.LineItems())
	if err != nil {
		return nil, err
	}

	if err = h.validator.Validate(cmd.LineItems(), products); err != nil {
		return nil, err
	}

	for _, item := range cmd.LineItems() {
		if err = productRepo.Reserve(ctx, item.ProductID(), item.Quantity()); err != nil {
			return nil, err
		}
	}

	placed, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.Address(),
		cmd.LineItems(),
		cmd.Pricing(),
		cmd.DeliveryDate(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}

// loadProducts fetches the product for every distinct line item reference.
// Missing products are left out of the map so the validator can report the
// first missing item in submission order, by its display name.
func (h *PlaceOrderCommandHandler) loadProducts(
	ctx context.Context,
	productRepo ports.ProductRepository,
	lineItems []order.LineItem,
) (map[kernel.UUID]*product.Product, error) {
	products := make(map[kernel.UUID]*product.Product, len(lineItems))

	for _, item := range lineItems {
		if _, ok := products[item.ProductID()]; ok {
			continue
		}

		p, err := productRepo.Get(ctx, item.ProductID())
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return nil, err
		}

		products[p.ID()] = p
	}

	return products, nil
}
