package persistence

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/felixgeelhaar/todo/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/todo/internal/tasks/domain"
)

// FileTaskRepository implements domain.Repository on a single JSON file.
// All tasks live in memory; every mutation rewrites the whole file while
// holding the write lock, so the file always matches the last successful
// mutation. The rewrite is a truncate-and-write, not an atomic swap.
type FileTaskRepository struct {
	path   string
	logger *slog.Logger

	mu    sync.RWMutex
	tasks []*domain.Task
}

// NewFileTaskRepository creates the file if needed and loads its contents.
// Unparseable content is treated as an empty store.
func NewFileTaskRepository(path string, logger *slog.Logger) (*FileTaskRepository, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("backend", "file", "path", path)

	if err := ensureFile(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrStorageIO, path, err)
	}

	tasks, err := DecodeTasks(data)
	if err != nil {
		logger.Warn("task file is not readable, starting with an empty list", "error", err)
		tasks = []*domain.Task{}
	}
	logger.Debug("loaded tasks", "count", len(tasks))

	return &FileTaskRepository{
		path:   path,
		logger: logger,
		tasks:  tasks,
	}, nil
}

func ensureFile(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: stat %s: %w", ErrStorageIO, path, err)
	}

	if err := database.EnsureDirectory(path); err != nil {
		return fmt.Errorf("%w: create directory for %s: %w", ErrStorageIO, path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrStorageIO, path, err)
	}
	return f.Close()
}

// Path returns the backing file path.
func (r *FileTaskRepository) Path() string {
	return r.path
}

// GetAll returns copies of all tasks ordered by id.
func (r *FileTaskRepository) GetAll(ctx context.Context) ([]*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.logger.Debug("getting all tasks")

	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		tasks = append(tasks, t.Clone())
	}
	sortByID(tasks)
	return tasks, nil
}

// GetByID returns a copy of the task with the given id.
func (r *FileTaskRepository) GetByID(ctx context.Context, id int32) (*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.logger.Debug("getting task", "id", id)

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: id %d", domain.ErrTaskNotFound, id)
	}
	return r.tasks[i].Clone(), nil
}

// Add stores a new task with id max+1, or 1 for an empty store.
func (r *FileTaskRepository) Add(ctx context.Context, nt domain.NewTask) error {
	if err := nt.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.nextID()
	if err != nil {
		return err
	}
	r.logger.Debug("adding task", "id", id)
	r.tasks = append(r.tasks, domain.RehydrateTask(id, nt.Name, nt.Description, false))

	return r.persist()
}

// Remove deletes the task if present.
func (r *FileTaskRepository) Remove(ctx context.Context, id int32) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.logger.Debug("removing task", "id", id)

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.tasks[:0]
	for _, t := range r.tasks {
		if t.ID() != id {
			kept = append(kept, t)
		}
	}
	clear(r.tasks[len(kept):])
	r.tasks = kept

	return r.persist()
}

// Update replaces the stored task that has the same id.
func (r *FileTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if err := validateTask(task); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	r.logger.Debug("updating task", "id", task.ID())

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(task.ID())
	if i < 0 {
		return fmt.Errorf("%w: id %d", domain.ErrTaskNotFound, task.ID())
	}
	r.tasks[i] = task.Clone()

	return r.persist()
}

// Modify applies fn to the task under the write lock.
func (r *FileTaskRepository) Modify(ctx context.Context, id int32, fn func(*domain.Task) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.logger.Debug("modifying task", "id", id)

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: id %d", domain.ErrTaskNotFound, id)
	}

	updated := r.tasks[i].Clone()
	if err := fn(updated); err != nil {
		return err
	}
	if err := validateTask(updated); err != nil {
		return err
	}
	r.tasks[i] = updated

	return r.persist()
}

// persist rewrites the whole file. Callers hold the write lock.
func (r *FileTaskRepository) persist() error {
	data, err := EncodeTasks(r.tasks)
	if err != nil {
		return err
	}

	r.logger.Debug("writing task file", "bytes", len(data), "count", len(r.tasks))
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrStorageIO, r.path, err)
	}
	return nil
}

func (r *FileTaskRepository) indexOf(id int32) int {
	for i, t := range r.tasks {
		if t.ID() == id {
			return i
		}
	}
	return -1
}

func (r *FileTaskRepository) nextID() (int32, error) {
	var maxID int32
	for _, t := range r.tasks {
		maxID = max(maxID, t.ID())
	}
	if maxID == math.MaxInt32 {
		return 0, errors.New("task id space exhausted")
	}
	return maxID + 1, nil
}

func sortByID(tasks []*domain.Task) {
	slices.SortStableFunc(tasks, func(a, b *domain.Task) int {
		return cmp.Compare(a.ID(), b.ID())
	})
}

func validateTask(t *domain.Task) error {
	if t == nil {
		return errors.New("task is nil")
	}
	if strings.TrimSpace(t.Name()) == "" {
		return domain.ErrEmptyName
	}
	return nil
}
