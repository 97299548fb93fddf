package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveTaskHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("removes task", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewRemoveTaskHandler(repo)

		repo.On("Remove", ctx, int32(4)).Return(nil)

		require.NoError(t, handler.Handle(ctx, RemoveTaskCommand{TaskID: 4}))
		repo.AssertExpectations(t)
	})

	t.Run("wraps repository error", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewRemoveTaskHandler(repo)
		storeErr := errors.New("connection reset")

		repo.On("Remove", ctx, int32(4)).Return(storeErr)

		err := handler.Handle(ctx, RemoveTaskCommand{TaskID: 4})

		assert.ErrorIs(t, err, storeErr)
		assert.Contains(t, err.Error(), "remove task 4")
	})
}
