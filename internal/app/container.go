package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/felixgeelhaar/todo/internal/tasks/application/commands"
	"github.com/felixgeelhaar/todo/internal/tasks/application/queries"
	"github.com/felixgeelhaar/todo/internal/tasks/domain"
	"github.com/felixgeelhaar/todo/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config  *config.Config
	Logger  *slog.Logger
	Storage config.StorageConfig

	// TaskRepo is the backend selected by Storage.
	TaskRepo domain.Repository
	closer   io.Closer

	// Task Command Handlers
	AddTaskHandler      *commands.AddTaskHandler
	RemoveTaskHandler   *commands.RemoveTaskHandler
	CompleteTaskHandler *commands.CompleteTaskHandler

	// Task Query Handlers
	ListTasksHandler *queries.ListTasksHandler
	GetTaskHandler   *queries.GetTaskHandler
}

// NewContainer resolves the storage configuration, opens the backend and
// wires the task handlers to it. SQLite databases get their table created
// on first use.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	sc, err := cfg.Storage()
	if err != nil {
		return nil, fmt.Errorf("resolve storage: %w", err)
	}

	opts := []Option{WithMaxConns(cfg.MaxConns)}
	if backend, _ := sc.Backend(); backend == config.BackendSQLite {
		opts = append(opts, WithEnsureSchema())
	}

	repo, closer, err := OpenRepository(ctx, sc, logger, opts...)
	if err != nil {
		return nil, err
	}

	c := NewContainerWithRepository(cfg, logger, repo)
	c.Storage = sc
	c.closer = closer
	return c, nil
}

// NewContainerWithRepository wires the handlers to an existing repository.
func NewContainerWithRepository(cfg *config.Config, logger *slog.Logger, repo domain.Repository) *Container {
	if logger == nil {
		logger = slog.Default()
	}
	return &Container{
		Config:              cfg,
		Logger:              logger,
		TaskRepo:            repo,
		AddTaskHandler:      commands.NewAddTaskHandler(repo),
		RemoveTaskHandler:   commands.NewRemoveTaskHandler(repo),
		CompleteTaskHandler: commands.NewCompleteTaskHandler(repo),
		ListTasksHandler:    queries.NewListTasksHandler(repo),
		GetTaskHandler:      queries.NewGetTaskHandler(repo),
	}
}

// Close releases the storage backend.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	if err := c.closer.Close(); err != nil {
		c.Logger.Error("failed to close storage backend", "error", err)
		return err
	}
	return nil
}
