package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/abhisek/gradebook/internal/gradebook"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds runtime configuration for the gradebook.
type Config struct {
	// DataDir holds the roster files and the log file.
	DataDir string

	// Backend selects the persistence format.
	// Values: "json", "sqlite"
	Backend string

	// LogLevel is the minimum level written to the log file.
	// Values: "debug", "info", "warn", "error"
	LogLevel string

	// FullCredits is the credit value of a passed course. Default: 25.
	FullCredits float64
}

// DefaultConfig returns a Config with sensible defaults. DataDir is left
// empty and resolved by ResolveDataDir.
func DefaultConfig() Config {
	return Config{
		Backend:     BackendJSON,
		LogLevel:    "info",
		FullCredits: gradebook.DefaultFullCredits,
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() Config {
	cfg := DefaultConfig()

	if d := os.Getenv("GRADEBOOK_DATA"); d != "" {
		cfg.DataDir = d
	}
	if b := os.Getenv("GRADEBOOK_STORE"); b != "" {
		cfg.Backend = strings.ToLower(b)
	}
	if l := os.Getenv("GRADEBOOK_LOG_LEVEL"); l != "" {
		cfg.LogLevel = strings.ToLower(l)
	}
	if c := os.Getenv("GRADEBOOK_FULL_CREDITS"); c != "" {
		if v, err := strconv.ParseFloat(c, 64); err == nil {
			cfg.FullCredits = v
		}
	}

	return cfg
}

// Validate checks that every field holds a supported value.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("unknown store backend: %q", c.Backend)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q", c.LogLevel)
	}
	if !(c.FullCredits > 0) || math.IsInf(c.FullCredits, 0) {
		return fmt.Errorf("full credits must be a positive finite number, got %v", c.FullCredits)
	}
	return nil
}

// ResolveDataDir fills DataDir when unset, using
// $XDG_DATA_HOME/gradebook or ~/.local/share/gradebook, and creates it.
func (c *Config) ResolveDataDir() error {
	if c.DataDir == "" {
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("resolve home dir: %w", err)
			}
			dataHome = filepath.Join(home, ".local", "share")
		}
		c.DataDir = filepath.Join(dataHome, "gradebook")
	}
	return os.MkdirAll(c.DataDir, 0o755)
}

// LogPath returns the log file location inside DataDir.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "gradebook.log")
}
