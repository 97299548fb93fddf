package commands

import (
	"context"

	"github.com/felixgeelhaar/todo/internal/tasks/domain"
	"github.com/stretchr/testify/mock"
)

type mockTaskRepo struct {
	mock.Mock
}

func (m *mockTaskRepo) GetAll(ctx context.Context) ([]*domain.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

func (m *mockTaskRepo) GetByID(ctx context.Context, id int32) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *mockTaskRepo) Add(ctx context.Context, nt domain.NewTask) error {
	args := m.Called(ctx, nt)
	return args.Error(0)
}

func (m *mockTaskRepo) Remove(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

// mockModifierRepo adds an atomic Modify to mockTaskRepo.
type mockModifierRepo struct {
	mockTaskRepo
}

func (m *mockModifierRepo) Modify(ctx context.Context, id int32, fn func(*domain.Task) error) error {
	args := m.Called(ctx, id, fn)
	if t, ok := args.Get(0).(*domain.Task); ok && t != nil {
		if err := fn(t); err != nil {
			return err
		}
	}
	return args.Error(1)
}
