package commands

import (
	"context"
)

// RestockProductCommandHandler handles the business logic for restocking products.
// Increments stock through the ledger's atomic increment, so a restock racing
// with concurrent order placements cannot lose either side's update.
//
// Example:
//
//	handler := NewRestockProductCommandHandler(uowFactory)
//	cmd, _ := NewRestockProductCommand(productID, 50)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("restock failed: %w", err)
//	}
type RestockProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewRestockProductCommandHandler creates a handler for restock operations.
// Requires a ProductUoWFactory for transactional persistence operations.
func NewRestockProductCommandHandler(uowFactory ProductUoWFactory) RestockProductCommandHandler {
	return RestockProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restock command.
// Verifies the product exists, then applies the atomic stock increment.
func (h *RestockProductCommandHandler) Handle(ctx context.Context, cmd RestockProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()

	if _, err := productRepo.Get(ctx, cmd.ProductID()); err != nil {
		return err
	}

	if err := productRepo.Release(ctx, cmd.ProductID(), cmd.Quantity()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
