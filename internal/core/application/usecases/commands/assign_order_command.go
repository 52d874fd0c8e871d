package commands

import (
	"errors"

	"supermarket/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand triggers the assignment of an available driver to an
// unassigned order. It finds the oldest order still awaiting dispatch and
// assigns the least-loaded active driver.
//
// Example:
//
//	cmd := NewAssignOrderCommand()
//	handler := NewAssignOrderCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No orders to assign or no available drivers: %v", err)
//	}
type AssignOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a new command to trigger order assignment.
// This is a parameterless command that initiates the driver-order matching process.
func NewAssignOrderCommand() AssignOrderCommand {
	return AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignOrderCommandIsNotConstructed if validation fails.
func (c *AssignOrderCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignOrderCommandIsNotConstructed,
	)
}
