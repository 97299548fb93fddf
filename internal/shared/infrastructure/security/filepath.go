// Package security validates user supplied locations before they are opened.
package security

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidPath is returned for storage paths that cannot be used.
var ErrInvalidPath = errors.New("invalid storage path")

// forbiddenChars cannot appear in a storage path.
var forbiddenChars = []string{"\x00", "\n", "\r"}

// ValidateStoragePath cleans path, makes it absolute and resolves symlinks.
// A path that does not exist yet is returned cleaned. Directories are
// rejected since the backend needs a regular file.
func ValidateStoragePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("%w: path cannot be empty", ErrInvalidPath)
	}

	for _, char := range forbiddenChars {
		if strings.Contains(path, char) {
			return "", fmt.Errorf("%w: path contains forbidden character %q", ErrInvalidPath, char)
		}
	}

	cleanPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(cleanPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cleanPath, nil
		}
		return "", fmt.Errorf("resolve storage path: %w", err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("stat storage path: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrInvalidPath, path)
	}

	return resolved, nil
}
