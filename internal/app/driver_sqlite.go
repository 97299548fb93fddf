//go:build !nosqlite

package app

import (
	// Register the SQLite backend.
	_ "github.com/felixgeelhaar/todo/internal/shared/infrastructure/database/sqlite"
)
