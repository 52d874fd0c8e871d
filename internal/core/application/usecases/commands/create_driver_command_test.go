package commands_test

import (
	"testing"

	"supermarket/internal/core/application/usecases/commands"
	"supermarket/internal/core/domain/model/driver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDriverCommand(t *testing.T) {
	t.Run("should create a valid command with a generated ID", func(t *testing.T) {
		details := driver.Details{
			Name:          "Ali Hassan",
			Email:         "ali@example.com",
			Phone:         "+923001234567",
			LicenseNumber: "LHR-556677",
			VehicleNumber: "ABC-123",
			Address:       "14 Mall Road, Lahore",
			CNICNumber:    "35202-1234567-1",
		}

		cmd, err := commands.NewCreateDriverCommand(details)

		require.NoError(t, err)
		assert.NoError(t, cmd.DriverID().Validate())
		assert.Equal(t, details, cmd.Details())
		assert.NoError(t, cmd.Validate())
	})

	t.Run("should reject a command not created via constructor", func(t *testing.T) {
		var cmd commands.CreateDriverCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrCreateDriverCommandIsNotConstructed)
	})
}
