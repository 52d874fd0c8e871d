package commands

import (
	"errors"

	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/core/domain/model/order"
	"supermarket/internal/pkg/guard"
)

var (
	ErrSetOrderStatusCommandIsNotConstructed = errors.New(
		"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
	)
	ErrAssignedDriverIsRequired = errors.New("assigned driver is required for the assigned status")
)

// SetOrderStatusCommand represents a request to move an order to a new status.
// Covers the whole lifecycle: plain transitions (pending), the assignment
// transition (which requires a driver), and the delivery transition (which
// closes the order and credits the assigned driver).
//
// Example:
//
//	cmd, err := NewSetOrderStatusCommand(orderID, order.Assigned, &driverID)
//	if err != nil {
//	    return fmt.Errorf("invalid status change: %w", err)
//	}
//
//	handler := NewSetOrderStatusCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
type SetOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	status     order.Status
	assignedTo *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetOrderStatusCommand creates a command to change an order's status.
// The target status must be valid. When the target is Assigned, assignedTo
// identifies the driver and is required; for every other target it is ignored.
func NewSetOrderStatusCommand(
	orderID kernel.UUID,
	status order.Status,
	assignedTo *kernel.UUID,
) (SetOrderStatusCommand, error) {
	command := SetOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setStatus(status),
		command.setAssignedTo(status, assignedTo),
	); err != nil {
		return SetOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetOrderStatusCommandIsNotConstructed if validation fails.
func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order ID from the command.
func (c SetOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the target status from the command.
func (c SetOrderStatusCommand) Status() order.Status {
	return c.status
}

// AssignedTo returns the driver ID for the assignment transition, or nil.
func (c SetOrderStatusCommand) AssignedTo() *kernel.UUID {
	return c.assignedTo
}

func (c *SetOrderStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *SetOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *SetOrderStatusCommand) setAssignedTo(status order.Status, assignedTo *kernel.UUID) error {
	if status != order.Assigned {
		c.assignedTo = nil
		return nil
	}

	if assignedTo == nil {
		return ErrAssignedDriverIsRequired
	}

	if err := assignedTo.Validate(); err != nil {
		return err
	}

	c.assignedTo = assignedTo
	return nil
}
