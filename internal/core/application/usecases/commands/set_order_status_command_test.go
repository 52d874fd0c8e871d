package commands_test

import (
	"testing"

	"supermarket/internal/core/application/usecases/commands"
	"supermarket/internal/core/domain/model/kernel"
	"supermarket/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetOrderStatusCommand(t *testing.T) {
	validOrderID := kernel.NewUUID()

	t.Run("should create valid command for a plain transition", func(t *testing.T) {
		cmd, err := commands.NewSetOrderStatusCommand(validOrderID, order.Pending, nil)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(validOrderID))
		assert.Equal(t, order.Pending, cmd.Status())
		assert.Nil(t, cmd.AssignedTo())
	})

	t.Run("should create valid command for the assignment transition", func(t *testing.T) {
		driverID := kernel.NewUUID()

		cmd, err := commands.NewSetOrderStatusCommand(validOrderID, order.Assigned, &driverID)

		require.NoError(t, err)
		require.NotNil(t, cmd.AssignedTo())
		assert.True(t, cmd.AssignedTo().IsEqual(driverID))
	})

	t.Run("should require a driver for the assignment transition", func(t *testing.T) {
		_, err := commands.NewSetOrderStatusCommand(validOrderID, order.Assigned, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrAssignedDriverIsRequired)
	})

	t.Run("should ignore the driver for other transitions", func(t *testing.T) {
		driverID := kernel.NewUUID()

		cmd, err := commands.NewSetOrderStatusCommand(validOrderID, order.Delivered, &driverID)

		require.NoError(t, err)
		assert.Nil(t, cmd.AssignedTo())
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewSetOrderStatusCommand(invalidID, order.Pending, nil)

		require.Error(t, err)
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		_, err := commands.NewSetOrderStatusCommand(validOrderID, order.Unknown, nil)

		require.Error(t, err)
	})

	t.Run("should reject a zero value command", func(t *testing.T) {
		cmd := commands.SetOrderStatusCommand{}

		err := cmd.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrSetOrderStatusCommandIsNotConstructed)
	})
}
