package queries

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/todo/internal/tasks/domain"
)

// GetTaskQuery identifies a single task.
type GetTaskQuery struct {
	TaskID int32
}

// GetTaskHandler handles the GetTaskQuery.
type GetTaskHandler struct {
	taskRepo domain.Repository
}

// NewGetTaskHandler creates a new GetTaskHandler.
func NewGetTaskHandler(taskRepo domain.Repository) *GetTaskHandler {
	return &GetTaskHandler{taskRepo: taskRepo}
}

// Handle executes the GetTaskQuery.
func (h *GetTaskHandler) Handle(ctx context.Context, query GetTaskQuery) (*TaskDTO, error) {
	t, err := h.taskRepo.GetByID(ctx, query.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task %d: %w", query.TaskID, err)
	}
	dto := toDTO(t)
	return &dto, nil
}
