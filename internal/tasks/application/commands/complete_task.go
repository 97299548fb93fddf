package commands

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/todo/internal/tasks/domain"
)

// CompleteTaskCommand identifies the task to mark completed.
type CompleteTaskCommand struct {
	TaskID int32
}

// CompleteTaskHandler handles the CompleteTaskCommand.
type CompleteTaskHandler struct {
	taskRepo domain.Repository
}

// NewCompleteTaskHandler creates a new CompleteTaskHandler.
func NewCompleteTaskHandler(taskRepo domain.Repository) *CompleteTaskHandler {
	return &CompleteTaskHandler{taskRepo: taskRepo}
}

// Handle executes the CompleteTaskCommand. Backends implementing
// domain.Modifier complete the task atomically; others fall back to a
// read followed by a full update.
func (h *CompleteTaskHandler) Handle(ctx context.Context, cmd CompleteTaskCommand) error {
	complete := func(t *domain.Task) error {
		t.SetCompleted()
		return nil
	}

	if m, ok := h.taskRepo.(domain.Modifier); ok {
		if err := m.Modify(ctx, cmd.TaskID, complete); err != nil {
			return fmt.Errorf("complete task %d: %w", cmd.TaskID, err)
		}
		return nil
	}

	t, err := h.taskRepo.GetByID(ctx, cmd.TaskID)
	if err != nil {
		return fmt.Errorf("complete task %d: %w", cmd.TaskID, err)
	}

	t.SetCompleted()
	if err := h.taskRepo.Update(ctx, t); err != nil {
		return fmt.Errorf("complete task %d: %w", cmd.TaskID, err)
	}
	return nil
}
