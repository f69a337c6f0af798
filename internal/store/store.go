package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/gradebook/internal/config"
	"github.com/abhisek/gradebook/internal/gradebook"
)

// File names inside the data directory.
const (
	StudentsFile = "students.json"
	CoursesFile  = "courses.json"
	SQLiteFile   = "gradebook.db"
)

// Open returns the Persister selected by cfg.Backend, rooted at cfg.DataDir.
func Open(cfg config.Config) (gradebook.Persister, error) {
	switch cfg.Backend {
	case config.BackendJSON:
		return OpenJSON(cfg.DataDir)
	case config.BackendSQLite:
		path := filepath.Join(cfg.DataDir, SQLiteFile)
		if err := EnsureDir(path); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown store backend: %q", cfg.Backend)
	}
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
