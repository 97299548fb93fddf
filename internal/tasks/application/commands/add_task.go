package commands

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/todo/internal/tasks/domain"
)

// AddTaskCommand contains the data needed to add a task.
type AddTaskCommand struct {
	Name        string
	Description string
}

// AddTaskHandler handles the AddTaskCommand.
type AddTaskHandler struct {
	taskRepo domain.Repository
}

// NewAddTaskHandler creates a new AddTaskHandler.
func NewAddTaskHandler(taskRepo domain.Repository) *AddTaskHandler {
	return &AddTaskHandler{taskRepo: taskRepo}
}

// Handle executes the AddTaskCommand. An empty description is stored as absent.
func (h *AddTaskHandler) Handle(ctx context.Context, cmd AddTaskCommand) error {
	nt := domain.WithDescription(cmd.Name, cmd.Description)
	if err := nt.Validate(); err != nil {
		return err
	}

	if err := h.taskRepo.Add(ctx, nt); err != nil {
		return fmt.Errorf("add task: %w", err)
	}
	return nil
}
