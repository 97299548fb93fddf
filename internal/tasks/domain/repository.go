package domain

import "context"

// Repository defines the interface for task persistence.
type Repository interface {
	GetAll(ctx context.Context) ([]*Task, error)
	GetByID(ctx context.Context, id int32) (*Task, error)
	Add(ctx context.Context, task NewTask) error
	// Remove is idempotent: removing an unknown id is not an error.
	Remove(ctx context.Context, id int32) error
	Update(ctx context.Context, task *Task) error
}

// Modifier is implemented by repositories that can apply a change to a
// single task atomically. The function receives a copy; if it returns an
// error nothing is written.
type Modifier interface {
	Modify(ctx context.Context, id int32, fn func(*Task) error) error
}
