//go:build !nopostgres

package app

import (
	// Register the PostgreSQL backend.
	_ "github.com/felixgeelhaar/todo/internal/shared/infrastructure/database/postgres"
)
