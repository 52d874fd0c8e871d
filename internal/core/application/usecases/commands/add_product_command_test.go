package commands_test

import (
	"testing"

	"supermarket/internal/core/application/usecases/commands"
	"supermarket/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddProductCommand(t *testing.T) {
	t.Run("should create a valid command with a generated ID", func(t *testing.T) {
		cmd, err := commands.NewAddProductCommand("Milk", 2.49, product.UnitLitre, 1, 40)

		require.NoError(t, err)
		assert.NoError(t, cmd.ProductID().Validate())
		assert.Equal(t, "Milk", cmd.Name())
		assert.Equal(t, 2.49, cmd.Price())
		assert.Equal(t, product.UnitLitre, cmd.UnitType())
		assert.Equal(t, 1.0, cmd.UnitValue())
		assert.Equal(t, 40, cmd.StockCount())
		assert.NoError(t, cmd.Validate())
	})

	t.Run("should reject an invalid unit type", func(t *testing.T) {
		_, err := commands.NewAddProductCommand("Milk", 2.49, product.UnitUnknown, 1, 40)

		assert.Error(t, err)
	})

	t.Run("should reject a command not created via constructor", func(t *testing.T) {
		var cmd commands.AddProductCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrAddProductCommandIsNotConstructed)
	})
}
