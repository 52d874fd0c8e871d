package commands

import (
	"context"
	"errors"

	"supermarket/internal/core/domain/services"
	"supermarket/internal/pkg/errs"
)

var (
	ErrNoActiveDriversFound    = errors.New("no active drivers found")
	ErrNoUnassignedOrdersFound = errors.New("no unassigned orders found")
)

// AssignOrderCommandHandler orchestrates the driver assignment process.
// Finds orders awaiting dispatch and matches them with active drivers using
// the least-loaded selection rule. The order's assignment is persisted in a
// single transaction.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(uowFactory)
//	cmd := NewAssignOrderCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoUnassignedOrdersFound):
//	    log.Println("No orders awaiting dispatch")
//	case errors.Is(err, ErrNoActiveDriversFound):
//	    log.Println("No drivers on duty")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Println("Driver assigned successfully")
//	}
type AssignOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewAssignOrderCommandHandler creates a handler for automatic order assignment.
// Requires a DispatchUoWFactory for coordinating updates across orders and drivers.
func NewAssignOrderCommandHandler(uowFactory DispatchUoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order assignment command.
// Retrieves the oldest unassigned order, loads active drivers, and uses
// OrderDispatcher to select the least-loaded one. Returns specific errors for
// no orders (ErrNoUnassignedOrdersFound) or no drivers (ErrNoActiveDriversFound).
func (h AssignOrderCommandHandler) Handle(ctx context.Context, command AssignOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()

	ord, err := orderRepo.GetFirstUnassigned(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoUnassignedOrdersFound
	}
	if err != nil {
		return err
	}

	drivers, err := driverRepo.GetAllActive(ctx)
	if err != nil {
		return err
	}
	if len(drivers) == 0 {
		return ErrNoActiveDriversFound
	}

	if _, err = services.NewOrderDispatcher().Dispatch(ord, drivers); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
