// Package migrations creates the tasks table for the relational backends.
// Scripts are idempotent and unversioned; there is no up/down tracking.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/felixgeelhaar/todo/internal/shared/infrastructure/database"
)

//go:embed sqlite/*.sql postgres/*.sql
var scriptsFS embed.FS

// EnsureSchema executes every bundled script for the connection's driver in
// file name order.
func EnsureSchema(ctx context.Context, conn database.Connection) error {
	dir := scriptDir(conn.Driver())
	if dir == "" {
		return fmt.Errorf("no schema for driver %q", conn.Driver())
	}

	entries, err := scriptsFS.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read schema directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, file := range files {
		script, err := scriptsFS.ReadFile(dir + "/" + file)
		if err != nil {
			return fmt.Errorf("failed to read schema script %s: %w", file, err)
		}
		if _, err := conn.Exec(ctx, string(script)); err != nil {
			return fmt.Errorf("failed to execute schema script %s: %w", file, err)
		}
	}

	return nil
}

func scriptDir(d database.Driver) string {
	switch d {
	case database.DriverSQLite:
		return "sqlite"
	case database.DriverPostgres:
		return "postgres"
	default:
		return ""
	}
}
