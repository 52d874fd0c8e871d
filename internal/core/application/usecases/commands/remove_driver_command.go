package commands

import (
	"errors"

	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/pkg/guard"
)

var ErrRemoveDriverCommandIsNotConstructed = errors.New(
	"RemoveDriverCommand must be created via NewRemoveDriverCommand constructor",
)

// RemoveDriverCommand represents a request to retire a driver from service.
// Removal is a soft delete: the driver's delivery history is preserved but
// the driver stops appearing in lookups and dispatch.
//
// Example:
//
//	cmd, err := NewRemoveDriverCommand(driverID)
//	if err != nil {
//	    return fmt.Errorf("invalid driver ID: %w", err)
//	}
//
//	handler := NewRemoveDriverCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("driver removal failed: %w", err)
//	}
type RemoveDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveDriverCommand creates a command to retire a driver.
func NewRemoveDriverCommand(driverID kernel.UUID) (RemoveDriverCommand, error) {
	command := RemoveDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDriverID(driverID); err != nil {
		return RemoveDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveDriverCommandIsNotConstructed if validation fails.
func (c RemoveDriverCommand) Validate() error {
	return c.guard.Validate(ErrRemoveDriverCommandIsNotConstructed)
}

// DriverID returns the driver ID from the command.
func (c RemoveDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *RemoveDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}
