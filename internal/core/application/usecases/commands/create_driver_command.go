package commands

import (
	"errors"

	"supermarket/internal/core/domain/model/driver"
	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents a request to register a new delivery driver.
// Encapsulates the driver's personal and vehicle details.
//
// Example:
//
//	details := driver.Details{
//	    Name:          "Ali Hassan",
//	    Email:         "ali@example.com",
//	    Phone:         "+923001234567",
//	    LicenseNumber: "LHR-556677",
//	    VehicleNumber: "ABC-123",
//	    Address:       "14 Mall Road, Lahore",
//	    CNICNumber:    "35202-1234567-1",
//	}
//	cmd, err := NewCreateDriverCommand(details)
//	if err != nil {
//	    return fmt.Errorf("invalid driver data: %w", err)
//	}
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	details  driver.Details

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
// Automatically generates a unique ID for the driver. Detail validation is
// performed again by the aggregate constructor in the handler.
func NewCreateDriverCommand(details driver.Details) (CreateDriverCommand, error) {
	command := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDriverID(kernel.NewUUID()); err != nil {
		return CreateDriverCommand{}, err
	}

	command.details = details

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDriverCommandIsNotConstructed if validation fails.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the generated driver ID from the command.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Details returns the driver details from the command.
func (c CreateDriverCommand) Details() driver.Details {
	return c.details
}

func (c *CreateDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}
