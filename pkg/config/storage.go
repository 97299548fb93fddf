package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedScheme is returned for storage URLs whose scheme names no backend.
	ErrUnsupportedScheme = errors.New("unsupported storage scheme")
	// ErrInvalidStorageURL is returned when the storage value is not a URL.
	ErrInvalidStorageURL = errors.New("invalid storage URL")
	// ErrNoConfig is returned when the configuration file does not exist.
	ErrNoConfig = errors.New("no config file found")
)

// Backend identifies a storage backend.
type Backend int

const (
	BackendFile Backend = iota + 1
	BackendPostgres
	BackendSQLite
)

func (b Backend) String() string {
	switch b {
	case BackendFile:
		return "file"
	case BackendPostgres:
		return "postgresql"
	case BackendSQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// StorageConfig selects and parameterizes the storage backend.
type StorageConfig struct {
	Storage string `yaml:"storage"`
}

// NewStorageConfig validates rawURL and wraps it.
func NewStorageConfig(rawURL string) (StorageConfig, error) {
	sc := StorageConfig{Storage: strings.TrimSpace(rawURL)}
	if _, err := sc.Backend(); err != nil {
		return StorageConfig{}, err
	}
	return sc, nil
}

// DefaultConfigDir returns the todo directory under the user config dir.
func DefaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config directory: %w", err)
	}
	return filepath.Join(base, "todo"), nil
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultStorageConfig points at tasks.json in the default config dir.
func DefaultStorageConfig() (StorageConfig, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return StorageConfig{}, err
	}
	return FileStorageConfig(filepath.Join(dir, "tasks.json")), nil
}

// FileStorageConfig builds a file:// storage config for path.
func FileStorageConfig(path string) StorageConfig {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return StorageConfig{Storage: u.String()}
}

// LoadStorageConfig reads a YAML storage config file.
func LoadStorageConfig(path string) (StorageConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return StorageConfig{}, fmt.Errorf("%w at %s", ErrNoConfig, path)
		}
		return StorageConfig{}, fmt.Errorf("read config: %w", err)
	}

	var sc StorageConfig
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return StorageConfig{}, fmt.Errorf("unmarshal config %s: %w", path, err)
	}
	if sc.Storage == "" {
		return StorageConfig{}, fmt.Errorf("%w: config %s has no storage entry", ErrInvalidStorageURL, path)
	}
	return NewStorageConfig(sc.Storage)
}

// IsNoConfig reports whether err means the config file is missing.
func IsNoConfig(err error) bool {
	return errors.Is(err, ErrNoConfig)
}

// WriteFile serializes the config to path, replacing any previous content.
func (c StorageConfig) WriteFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// URL parses the storage value.
func (c StorageConfig) URL() (*url.URL, error) {
	u, err := url.Parse(c.Storage)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStorageURL, err)
	}
	return u, nil
}

// Backend returns the backend named by the URL scheme.
func (c StorageConfig) Backend() (Backend, error) {
	u, err := c.URL()
	if err != nil {
		return 0, err
	}

	switch strings.ToLower(u.Scheme) {
	case "file":
		return BackendFile, nil
	case "postgresql", "postgres":
		return BackendPostgres, nil
	case "sqlite":
		return BackendSQLite, nil
	case "":
		return 0, fmt.Errorf("%w: %q has no scheme", ErrUnsupportedScheme, c.Storage)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}

// FilePath returns the local path of a file:// storage URL.
func (c StorageConfig) FilePath() (string, error) {
	u, err := c.URL()
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(u.Scheme, "file") {
		return "", fmt.Errorf("%w: %q is not a file URL", ErrInvalidStorageURL, c.Storage)
	}
	if u.Host != "" && u.Host != "localhost" {
		return "", fmt.Errorf("%w: remote host %q in file URL", ErrInvalidStorageURL, u.Host)
	}

	path := u.Path
	if path == "" {
		path = u.Opaque
	}
	if path == "" {
		return "", fmt.Errorf("%w: %q has no path", ErrInvalidStorageURL, c.Storage)
	}
	return filepath.FromSlash(path), nil
}

// Redacted returns the storage URL with any password masked.
func (c StorageConfig) Redacted() string {
	u, err := c.URL()
	if err != nil {
		return c.Storage
	}
	return u.Redacted()
}
