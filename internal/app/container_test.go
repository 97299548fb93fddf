package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/felixgeelhaar/todo/internal/tasks/application/commands"
	"github.com/felixgeelhaar/todo/internal/tasks/application/queries"
	"github.com/felixgeelhaar/todo/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewContainer_FileFromConfig(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	tasksPath := filepath.Join(dir, "tasks.json")
	require.NoError(t, config.FileStorageConfig(tasksPath).WriteFile(cfgPath))

	c, err := NewContainer(ctx, &config.Config{ConfigPath: cfgPath}, testLogger())
	require.NoError(t, err)
	defer c.Close()

	backend, err := c.Storage.Backend()
	require.NoError(t, err)
	assert.Equal(t, config.BackendFile, backend)

	require.NoError(t, c.AddTaskHandler.Handle(ctx, commands.AddTaskCommand{Name: "buy milk"}))
	require.NoError(t, c.CompleteTaskHandler.Handle(ctx, commands.CompleteTaskCommand{TaskID: 1}))

	tasks, err := c.ListTasksHandler.Handle(ctx, queries.ListTasksQuery{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].Completed)

	require.NoError(t, c.RemoveTaskHandler.Handle(ctx, commands.RemoveTaskCommand{TaskID: 1}))
	tasks, err = c.ListTasksHandler.Handle(ctx, queries.ListTasksQuery{})
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestNewContainer_UnsupportedScheme(t *testing.T) {
	_, err := NewContainer(context.Background(), &config.Config{DatabaseURL: "redis://localhost"}, testLogger())
	assert.ErrorIs(t, err, config.ErrUnsupportedScheme)
}

func TestContainer_CloseWithoutBackend(t *testing.T) {
	c := NewContainerWithRepository(&config.Config{}, nil, nil)
	assert.NoError(t, c.Close())
}
