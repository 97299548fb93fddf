package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/todo/adapter/cli"
	"github.com/felixgeelhaar/todo/adapter/cli/settings"
	"github.com/felixgeelhaar/todo/adapter/cli/task"
	"github.com/felixgeelhaar/todo/internal/app"
	"github.com/felixgeelhaar/todo/pkg/config"
	"github.com/felixgeelhaar/todo/pkg/observability"
)

func main() {
	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	logger := observability.LoggerFromEnv()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "error", err)
		cfg = &config.Config{LogLevel: "warn", LogFormat: "text"}
	}

	logCfg := observability.DefaultLogConfig()
	logCfg.Level = observability.LogLevel(cfg.LogLevel)
	logCfg.Format = observability.LogFormat(cfg.LogFormat)
	if cfg.IsDevelopment() {
		logCfg.Level = observability.LogLevelDebug
		logCfg.AddSource = true
	}
	logger = observability.NewLogger(logCfg)

	cli.SetLogger(logger)
	cli.SetConfig(cfg)
	cli.SetAppFactory(newApp)

	cli.AddCommand(task.Commands()...)
	cli.AddCommand(settings.Cmd)

	cli.Execute(ctx)
}

// newApp opens the configured backend and wires the CLI handlers to it.
func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*cli.App, io.Closer, error) {
	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	cliApp := cli.NewApp(
		container.AddTaskHandler,
		container.RemoveTaskHandler,
		container.CompleteTaskHandler,
		container.ListTasksHandler,
		container.GetTaskHandler,
	)
	return cliApp, container, nil
}
