package queries

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/todo/internal/tasks/domain"
)

// TaskDTO is a data transfer object for tasks.
type TaskDTO struct {
	ID          int32
	Name        string
	Description string
	Completed   bool
	// Summary is the one-line rendering of the task.
	Summary string
}

// ListTasksQuery contains the parameters for listing tasks.
type ListTasksQuery struct {
	// Pending drops completed tasks.
	Pending bool
}

// ListTasksHandler handles the ListTasksQuery.
type ListTasksHandler struct {
	taskRepo domain.Repository
}

// NewListTasksHandler creates a new ListTasksHandler.
func NewListTasksHandler(taskRepo domain.Repository) *ListTasksHandler {
	return &ListTasksHandler{taskRepo: taskRepo}
}

// Handle executes the ListTasksQuery. Tasks keep the repository's id order.
func (h *ListTasksHandler) Handle(ctx context.Context, query ListTasksQuery) ([]TaskDTO, error) {
	tasks, err := h.taskRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	dtos := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		if query.Pending && t.Completed() {
			continue
		}
		dtos = append(dtos, toDTO(t))
	}
	return dtos, nil
}

func toDTO(t *domain.Task) TaskDTO {
	desc, _ := t.Description()
	return TaskDTO{
		ID:          t.ID(),
		Name:        t.Name(),
		Description: desc,
		Completed:   t.Completed(),
		Summary:     t.String(),
	}
}
