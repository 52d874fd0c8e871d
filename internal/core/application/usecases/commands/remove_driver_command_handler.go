package commands

import (
	"context"
)

// RemoveDriverCommandHandler handles the business logic for driver removal.
// Marks the driver deleted and inactive; the row stays in storage so completed
// delivery counts remain attributable.
//
// Example:
//
//	handler := NewRemoveDriverCommandHandler(uowFactory)
//	cmd, _ := NewRemoveDriverCommand(driverID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("driver removal failed: %w", err)
//	}
type RemoveDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewRemoveDriverCommandHandler creates a handler for driver removal.
// Requires a DriverUoWFactory for transactional persistence operations.
func NewRemoveDriverCommandHandler(uowFactory DriverUoWFactory) RemoveDriverCommandHandler {
	return RemoveDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver removal command.
// Loads the driver, marks it deleted and persists the change. A driver that
// does not exist or was already removed resolves as not found.
func (h *RemoveDriverCommandHandler) Handle(ctx context.Context, cmd RemoveDriverCommand) error {
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

	driverRepo := uow.DriverRepository()

	drv, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	drv.MarkDeleted()

	if err = driverRepo.Update(ctx, drv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
