package commands

import (
	"context"

	"supermarket/internal/core/domain/model/order"
)

// SetOrderStatusCommandHandler handles the business logic for order status transitions.
// The Assigned transition verifies the target driver exists before assignment.
// The Delivered transition closes the order and increments the driver's
// delivery counter in the same transaction, so a crash between the two writes
// cannot leave the order delivered but the driver uncredited.
//
// Example:
//
//	handler := NewSetOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewSetOrderStatusCommand(orderID, order.Delivered, nil)
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrDriverNotAssigned) {
//	    log.Println("cannot deliver an unassigned order")
//	}
type SetOrderStatusCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewSetOrderStatusCommandHandler creates a handler for order status transitions.
// Requires a DispatchUoWFactory since the delivery transition spans orders and drivers.
func NewSetOrderStatusCommandHandler(uowFactory DispatchUoWFactory) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Loads the order, applies the transition through the aggregate's state
// machine, and persists the result. A terminal order rejects every further
// transition, so a delivered order can never be delivered twice.
func (h *SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	switch cmd.Status() {
	case order.Assigned:
		drv, getErr := driverRepo.Get(ctx, *cmd.AssignedTo())
		if getErr != nil {
			return nil, getErr
		}

		if err = ord.Assign(drv.ID()); err != nil {
			return nil, err
		}
	case order.Delivered:
		if err = ord.Deliver(); err != nil {
			return nil, err
		}

		if err = driverRepo.IncrementDeliveries(ctx, *ord.AssignedTo()); err != nil {
			return nil, err
		}
	default:
		if err = ord.ChangeStatus(cmd.Status()); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ord, nil
}
