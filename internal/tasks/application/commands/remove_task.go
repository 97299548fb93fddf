package commands

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/todo/internal/tasks/domain"
)

// RemoveTaskCommand identifies the task to remove.
type RemoveTaskCommand struct {
	TaskID int32
}

// RemoveTaskHandler handles the RemoveTaskCommand.
type RemoveTaskHandler struct {
	taskRepo domain.Repository
}

// NewRemoveTaskHandler creates a new RemoveTaskHandler.
func NewRemoveTaskHandler(taskRepo domain.Repository) *RemoveTaskHandler {
	return &RemoveTaskHandler{taskRepo: taskRepo}
}

// Handle executes the RemoveTaskCommand. Removing an unknown id succeeds.
func (h *RemoveTaskHandler) Handle(ctx context.Context, cmd RemoveTaskCommand) error {
	if err := h.taskRepo.Remove(ctx, cmd.TaskID); err != nil {
		return fmt.Errorf("remove task %d: %w", cmd.TaskID, err)
	}
	return nil
}
