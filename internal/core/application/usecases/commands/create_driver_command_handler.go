package commands

import (
	"context"

	"supermarket/internal/core/domain/model/driver"
)

// CreateDriverCommandHandler handles the business logic for driver registration.
// Creates and persists new driver aggregates in active status with a zero
// delivery counter. A duplicate email surfaces as a validation error from the
// repository's unique constraint mapping.
//
// Example:
//
//	handler := NewCreateDriverCommandHandler(uowFactory)
//	cmd, _ := NewCreateDriverCommand(details)
//	registered, err := handler.Handle(ctx, cmd)
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
// Requires a DriverUoWFactory for transactional persistence operations.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver creation command.
// Creates a new driver aggregate and persists it within a transaction.
func (h *CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) (*driver.Driver, error) {
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

	registered, err := driver.NewDriver(cmd.DriverID(), cmd.Details())
	if err != nil {
		return nil, err
	}

	if err = uow.DriverRepository().Add(ctx, registered); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return registered, nil
}
