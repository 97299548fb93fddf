package database

import (
	"net/url"
	"strings"
)

// Driver represents a database backend type.
type Driver string

const (
	// DriverPostgres represents PostgreSQL database.
	DriverPostgres Driver = "postgres"
	// DriverSQLite represents SQLite database.
	DriverSQLite Driver = "sqlite"
)

// String returns the string representation of the driver.
func (d Driver) String() string {
	return string(d)
}

// DetectDriver returns the driver selected by the URL scheme, or "" when the
// URL does not name a database.
func DetectDriver(rawURL string) Driver {
	scheme, _, ok := strings.Cut(rawURL, ":")
	if !ok {
		return ""
	}

	switch strings.ToLower(scheme) {
	case "postgres", "postgresql":
		return DriverPostgres
	case "sqlite", "sqlite3":
		return DriverSQLite
	default:
		return ""
	}
}

// IsValid returns true if the driver is a known type.
func (d Driver) IsValid() bool {
	switch d {
	case DriverPostgres, DriverSQLite:
		return true
	default:
		return false
	}
}

// SQLitePathFromURL extracts the database file path from a sqlite URL.
// Accepted forms: sqlite:///abs/path.db, sqlite://rel.db, sqlite:rel.db and
// sqlite::memory:. Query parameters are dropped.
func SQLitePathFromURL(rawURL string) (string, bool) {
	scheme, rest, ok := strings.Cut(rawURL, ":")
	if !ok || DetectDriver(scheme+":") != DriverSQLite {
		return "", false
	}

	rest, _, _ = strings.Cut(rest, "?")
	if after, found := strings.CutPrefix(rest, "//"); found {
		rest = after
		if host, path, hasPath := strings.Cut(rest, "/"); hasPath && host == "localhost" {
			rest = "/" + path
		}
	}

	if unescaped, err := url.PathUnescape(rest); err == nil {
		rest = unescaped
	}
	if rest == "" {
		return "", false
	}
	return rest, true
}
