package commands

import (
	"context"

	"supermarket/internal/core/domain/model/product"
)

// AddProductCommandHandler handles the business logic for adding catalog products.
// Creates and persists new product aggregates with their opening stock.
//
// Example:
//
//	handler := NewAddProductCommandHandler(uowFactory)
//	cmd, _ := NewAddProductCommand("Eggs", 4.99, product.UnitDozen, 1, 25)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("product creation failed: %w", err)
//	}
type AddProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewAddProductCommandHandler creates a handler for product creation.
// Requires a ProductUoWFactory for transactional persistence operations.
func NewAddProductCommandHandler(uowFactory ProductUoWFactory) AddProductCommandHandler {
	return AddProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
// Creates a new product aggregate and persists it within a transaction.
// Returns the created product so callers can surface the generated ID.
func (h *AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) (*product.Product, error) {
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

	created, err := product.NewProduct(
		cmd.ProductID(),
		cmd.Name(),
		cmd.Price(),
		cmd.UnitType(),
		cmd.UnitValue(),
		cmd.StockCount(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ProductRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
