package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/felixgeelhaar/todo/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/todo/internal/shared/infrastructure/migrations"
	"github.com/felixgeelhaar/todo/internal/shared/infrastructure/security"
	"github.com/felixgeelhaar/todo/internal/tasks/domain"
	"github.com/felixgeelhaar/todo/internal/tasks/infrastructure/persistence"
	"github.com/felixgeelhaar/todo/pkg/config"
)

// ErrBackendUnavailable is returned when the configured backend cannot be
// used, either because it was not compiled in or because it failed to open.
var ErrBackendUnavailable = errors.New("storage backend unavailable")

// RepositoryFactory creates repositories based on the database driver.
type RepositoryFactory struct {
	conn   database.Connection
	driver database.Driver
	logger *slog.Logger
}

// NewRepositoryFactory creates a new repository factory.
func NewRepositoryFactory(conn database.Connection, logger *slog.Logger) *RepositoryFactory {
	return &RepositoryFactory{
		conn:   conn,
		driver: conn.Driver(),
		logger: logger,
	}
}

// TaskRepository creates a task repository for the configured driver.
func (f *RepositoryFactory) TaskRepository() (*persistence.SQLTaskRepository, error) {
	switch f.driver {
	case database.DriverPostgres, database.DriverSQLite:
		return persistence.NewSQLTaskRepository(f.conn, f.logger), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}

// Driver returns the database driver type.
func (f *RepositoryFactory) Driver() database.Driver {
	return f.driver
}

// Connection returns the underlying database connection.
func (f *RepositoryFactory) Connection() database.Connection {
	return f.conn
}

type openOptions struct {
	maxConns     int
	ensureSchema bool
}

// Option tunes OpenRepository.
type Option func(*openOptions)

// WithMaxConns caps the PostgreSQL pool size.
func WithMaxConns(n int) Option {
	return func(o *openOptions) { o.maxConns = n }
}

// WithEnsureSchema creates the tasks table on relational backends if it is missing.
func WithEnsureSchema() Option {
	return func(o *openOptions) { o.ensureSchema = true }
}

// OpenRepository selects the backend named by the storage URL scheme and
// constructs it. The returned closer releases the backend's resources.
// Failures are reported as is; nothing is retried.
func OpenRepository(ctx context.Context, sc config.StorageConfig, logger *slog.Logger, opts ...Option) (domain.Repository, io.Closer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var o openOptions
	for _, opt := range opts {
		opt(&o)
	}

	backend, err := sc.Backend()
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("opening storage backend", "backend", backend.String(), "storage", sc.Redacted())

	switch backend {
	case config.BackendFile:
		return openFile(sc, logger)
	case config.BackendPostgres:
		return openDatabase(ctx, sc, database.DriverPostgres, o, logger)
	case config.BackendSQLite:
		return openDatabase(ctx, sc, database.DriverSQLite, o, logger)
	default:
		return nil, nil, fmt.Errorf("%w: %s", config.ErrUnsupportedScheme, backend)
	}
}

func openFile(sc config.StorageConfig, logger *slog.Logger) (domain.Repository, io.Closer, error) {
	raw, err := sc.FilePath()
	if err != nil {
		return nil, nil, err
	}
	path, err := security.ValidateStoragePath(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", config.ErrInvalidStorageURL, err)
	}

	repo, err := persistence.NewFileTaskRepository(path, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open file backend: %w", err)
	}
	return repo, nopCloser{}, nil
}

func openDatabase(ctx context.Context, sc config.StorageConfig, driver database.Driver, o openOptions, logger *slog.Logger) (domain.Repository, io.Closer, error) {
	if !database.IsRegistered(driver) {
		return nil, nil, fmt.Errorf("%w: %s support is not compiled into this binary", ErrBackendUnavailable, driver)
	}

	conn, err := database.NewConnection(ctx, database.Config{
		Driver:   driver,
		URL:      sc.Storage,
		MaxConns: o.maxConns,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	if o.ensureSchema {
		if err := migrations.EnsureSchema(ctx, conn); err != nil {
			_ = conn.Close()
			return nil, nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
		}
	}

	repo, err := NewRepositoryFactory(conn, logger).TaskRepository()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return repo, repo, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
