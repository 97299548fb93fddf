package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/todo/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/todo/internal/tasks/domain"
)

const (
	selectTasksSQL = `SELECT id, name, description, completed FROM tasks ORDER BY id`
	selectTaskSQL  = `SELECT id, name, description, completed FROM tasks WHERE id = $1`
	insertTaskSQL  = `INSERT INTO tasks (name, description) VALUES ($1, $2)`
	deleteTaskSQL  = `DELETE FROM tasks WHERE id = $1`
	updateTaskSQL  = `UPDATE tasks SET name = $1, description = $2, completed = $3 WHERE id = $4`
)

// SQLTaskRepository implements domain.Repository on PostgreSQL or SQLite.
// It keeps no local state; ids come from the table's auto-increment key.
type SQLTaskRepository struct {
	conn   database.Connection
	logger *slog.Logger
}

// NewSQLTaskRepository creates a repository over an open connection.
func NewSQLTaskRepository(conn database.Connection, logger *slog.Logger) *SQLTaskRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLTaskRepository{
		conn:   conn,
		logger: logger.With("backend", conn.Driver().String()),
	}
}

// Close releases the connection pool.
func (r *SQLTaskRepository) Close() error {
	return r.conn.Close()
}

// GetAll returns all tasks ordered by id.
func (r *SQLTaskRepository) GetAll(ctx context.Context) ([]*domain.Task, error) {
	r.logger.Debug("getting all tasks")

	rows, err := database.ExecutorFromContext(ctx, r.conn).Query(ctx, selectTasksSQL)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

// GetByID returns the task with the given id.
func (r *SQLTaskRepository) GetByID(ctx context.Context, id int32) (*domain.Task, error) {
	r.logger.Debug("getting task", "id", id)
	return r.getByID(ctx, id, selectTaskSQL)
}

func (r *SQLTaskRepository) getByID(ctx context.Context, id int32, query string) (*domain.Task, error) {
	row := database.ExecutorFromContext(ctx, r.conn).QueryRow(ctx, query, id)
	t, err := scanTask(row)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrTaskNotFound, id)
		}
		return nil, fmt.Errorf("get task %d: %w", id, err)
	}
	return t, nil
}

// Add inserts a new task.
func (r *SQLTaskRepository) Add(ctx context.Context, nt domain.NewTask) error {
	if err := nt.Validate(); err != nil {
		return err
	}
	r.logger.Debug("adding task")

	_, err := database.ExecutorFromContext(ctx, r.conn).Exec(ctx, insertTaskSQL, nt.Name, nullString(nt.Description))
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// Remove deletes the task; deleting nothing is not an error.
func (r *SQLTaskRepository) Remove(ctx context.Context, id int32) error {
	r.logger.Debug("removing task", "id", id)

	if _, err := database.ExecutorFromContext(ctx, r.conn).Exec(ctx, deleteTaskSQL, id); err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

// Update replaces name, description and completion of an existing task.
func (r *SQLTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if err := validateTask(task); err != nil {
		return err
	}
	r.logger.Debug("updating task", "id", task.ID())

	result, err := database.ExecutorFromContext(ctx, r.conn).Exec(ctx, updateTaskSQL,
		task.Name(),
		nullString(task.DescriptionPtr()),
		task.Completed(),
		task.ID(),
	)
	if err != nil {
		return fmt.Errorf("update task %d: %w", task.ID(), err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update task %d: %w", task.ID(), err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrTaskNotFound, task.ID())
	}
	return nil
}

// Modify reads, changes and writes one task inside a single transaction.
// On PostgreSQL the row is locked with FOR UPDATE; SQLite serializes
// writers on its own.
func (r *SQLTaskRepository) Modify(ctx context.Context, id int32, fn func(*domain.Task) error) error {
	r.logger.Debug("modifying task", "id", id)

	query := selectTaskSQL
	if r.conn.Driver() == database.DriverPostgres {
		query += " FOR UPDATE"
	}

	return database.NewUnitOfWork(r.conn).Within(ctx, func(ctx context.Context) error {
		t, err := r.getByID(ctx, id, query)
		if err != nil {
			return err
		}
		if err := fn(t); err != nil {
			return err
		}
		return r.Update(ctx, t)
	})
}

func scanTask(row database.Row) (*domain.Task, error) {
	var (
		id          int32
		name        string
		description sql.NullString
		completed   bool
	)
	if err := row.Scan(&id, &name, &description, &completed); err != nil {
		return nil, err
	}

	var desc *string
	if description.Valid {
		desc = &description.String
	}
	return domain.RehydrateTask(id, name, desc, completed), nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
