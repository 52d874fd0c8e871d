package commands_test

import (
	"testing"

	"supermarket/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignOrderCommand(t *testing.T) {
	t.Run("should create a valid command", func(t *testing.T) {
		cmd := commands.NewAssignOrderCommand()

		assert.NoError(t, cmd.Validate())
	})

	t.Run("should reject a command not created via constructor", func(t *testing.T) {
		var cmd commands.AssignOrderCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrAssignOrderCommandIsNotConstructed)
	})
}
