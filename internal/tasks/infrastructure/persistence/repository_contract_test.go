package persistence_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/felixgeelhaar/todo/internal/tasks/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type repository interface {
	domain.Repository
	domain.Modifier
}

func strPtr(s string) *string { return &s }

// runRepositoryContract exercises behaviour every backend must share.
// newRepo must return an empty store.
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) repository) {
	t.Run("empty store lists nothing", func(t *testing.T) {
		repo := newRepo(t)

		tasks, err := repo.GetAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("add assigns id 1 on empty store", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		require.NoError(t, repo.Add(ctx, domain.NewTask{Name: "buy milk"}))

		tasks, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.True(t, domain.RehydrateTask(1, "buy milk", nil, false).Equal(tasks[0]), "got %v", tasks[0])
	})

	t.Run("sequential adds get increasing ids", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		for i := 0; i < 5; i++ {
			require.NoError(t, repo.Add(ctx, domain.NewTask{Name: "task"}))
		}

		tasks, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 5)
		for i, tk := range tasks {
			assert.Equal(t, int32(i+1), tk.ID())
		}
	})

	t.Run("add keeps description", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		require.NoError(t, repo.Add(ctx, domain.NewTask{Name: "buy milk", Description: strPtr("oat")}))

		tk, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		desc, ok := tk.Description()
		assert.True(t, ok)
		assert.Equal(t, "oat", desc)
	})

	t.Run("add rejects empty name", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		err := repo.Add(ctx, domain.NewTask{Name: "  "})
		assert.ErrorIs(t, err, domain.ErrEmptyName)

		tasks, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("get missing id is not found", func(t *testing.T) {
		_, err := newRepo(t).GetByID(context.Background(), 42)
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("remove then get is not found", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)
		require.NoError(t, repo.Add(ctx, domain.NewTask{Name: "a"}))

		for _, id := range []int32{1, 99} {
			require.NoError(t, repo.Remove(ctx, id))
			_, err := repo.GetByID(ctx, id)
			assert.ErrorIs(t, err, domain.ErrTaskNotFound)
		}
	})

	t.Run("remove keeps other tasks", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)
		require.NoError(t, repo.Add(ctx, domain.NewTask{Name: "a"}))
		require.NoError(t, repo.Add(ctx, domain.NewTask{Name: "b"}))

		require.NoError(t, repo.Remove(ctx, 1))

		tasks, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, int32(2), tasks[0].ID())
		assert.Equal(t, "b", tasks[0].Name())
	})

	t.Run("update marks completed", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)
		require.NoError(t, repo.Add(ctx, domain.NewTask{Name: "buy milk"}))

		require.NoError(t, repo.Update(ctx, domain.RehydrateTask(1, "buy milk", nil, true)))

		tk, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.True(t, tk.Completed())
	})

	t.Run("update replaces whole record", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)
		require.NoError(t, repo.Add(ctx, domain.NewTask{Name: "buy milk", Description: strPtr("oat")}))

		require.NoError(t, repo.Update(ctx, domain.RehydrateTask(1, "buy bread", nil, false)))

		tk, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.True(t, domain.RehydrateTask(1, "buy bread", nil, false).Equal(tk), "got %v", tk)
	})

	t.Run("update missing id is not found and changes nothing", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)
		require.NoError(t, repo.Add(ctx, domain.NewTask{Name: "a"}))
		before, err := repo.GetAll(ctx)
		require.NoError(t, err)

		err = repo.Update(ctx, domain.RehydrateTask(7, "ghost", nil, true))
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)

		after, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, after, len(before))
		for i := range before {
			assert.True(t, before[i].Equal(after[i]))
		}
	})

	t.Run("modify completes task", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)
		require.NoError(t, repo.Add(ctx, domain.NewTask{Name: "a"}))

		err := repo.Modify(ctx, 1, func(tk *domain.Task) error {
			tk.SetCompleted()
			return nil
		})
		require.NoError(t, err)

		tk, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.True(t, tk.Completed())
	})

	t.Run("modify missing id is not found", func(t *testing.T) {
		err := newRepo(t).Modify(context.Background(), 3, func(*domain.Task) error { return nil })
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("modify error leaves task unchanged", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)
		require.NoError(t, repo.Add(ctx, domain.NewTask{Name: "a"}))

		boom := errors.New("boom")
		err := repo.Modify(ctx, 1, func(tk *domain.Task) error {
			tk.SetCompleted()
			return boom
		})
		assert.ErrorIs(t, err, boom)

		tk, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.False(t, tk.Completed())
	})

	t.Run("concurrent adds get distinct ids", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)
		const n = 20

		var wg sync.WaitGroup
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- repo.Add(ctx, domain.NewTask{Name: "concurrent"})
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		tasks, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, n)
		for i, tk := range tasks {
			assert.Equal(t, int32(i+1), tk.ID())
		}
	})

	t.Run("concurrent modifies all succeed", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)
		require.NoError(t, repo.Add(ctx, domain.NewTask{Name: "shared"}))

		var wg sync.WaitGroup
		errs := make(chan error, 10)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- repo.Modify(ctx, 1, func(tk *domain.Task) error {
					tk.SetCompleted()
					return nil
				})
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		tk, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.True(t, tk.Completed())
	})
}
