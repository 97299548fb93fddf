package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/felixgeelhaar/todo/internal/tasks/application/commands"
	"github.com/felixgeelhaar/todo/internal/tasks/application/queries"
	"github.com/felixgeelhaar/todo/pkg/config"
)

// ErrAppNotInitialized is returned by commands that need storage when no
// App has been built.
var ErrAppNotInitialized = errors.New("application not initialized - storage backend required")

// App holds the CLI application dependencies.
type App struct {
	// Task Command Handlers
	AddTaskHandler      *commands.AddTaskHandler
	RemoveTaskHandler   *commands.RemoveTaskHandler
	CompleteTaskHandler *commands.CompleteTaskHandler

	// Task Query Handlers
	ListTasksHandler *queries.ListTasksHandler
	GetTaskHandler   *queries.GetTaskHandler
}

// NewApp creates a new CLI application with the provided handlers.
func NewApp(
	addTaskHandler *commands.AddTaskHandler,
	removeTaskHandler *commands.RemoveTaskHandler,
	completeTaskHandler *commands.CompleteTaskHandler,
	listTasksHandler *queries.ListTasksHandler,
	getTaskHandler *queries.GetTaskHandler,
) *App {
	return &App{
		AddTaskHandler:      addTaskHandler,
		RemoveTaskHandler:   removeTaskHandler,
		CompleteTaskHandler: completeTaskHandler,
		ListTasksHandler:    listTasksHandler,
		GetTaskHandler:      getTaskHandler,
	}
}

// AppFactory builds the App for a resolved configuration. The closer is
// called once the command has finished.
type AppFactory func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, io.Closer, error)

var (
	app        *App
	appCloser  io.Closer
	appFactory AppFactory
)

// SetApp sets the global CLI application.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application.
func GetApp() *App {
	return app
}

// SetAppFactory registers the constructor used for commands that need storage.
func SetAppFactory(f AppFactory) {
	appFactory = f
}

func ensureApp(ctx context.Context) error {
	if app != nil {
		return nil
	}
	if appFactory == nil {
		return ErrAppNotInitialized
	}

	a, closer, err := appFactory(ctx, GetConfig(), GetLogger())
	if err != nil {
		return err
	}
	app = a
	appCloser = closer
	return nil
}

func closeApp() {
	if appCloser == nil {
		return
	}
	if err := appCloser.Close(); err != nil {
		GetLogger().Warn("failed to close storage backend", "error", err)
	}
	appCloser = nil
	app = nil
}
