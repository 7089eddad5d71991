package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dori/wisht/internal/db"
	"github.com/gofrs/flock"
)

// App holds the serving state and dependencies
type App struct {
	DB       *db.DB
	DataDir  string
	lockFile *flock.Flock
}

// Config holds server configuration
type Config struct {
	DataDir string
	DBPath  string
}

// DefaultConfig returns the default server configuration. WISHT_DATA
// overrides the data directory.
func DefaultConfig() *Config {
	dataDir := db.DefaultDataDir()
	if env := os.Getenv("WISHT_DATA"); env != "" {
		dataDir = env
	}
	return &Config{
		DataDir: dataDir,
		DBPath:  filepath.Join(dataDir, "wisht.db"),
	}
}

// New creates a new serving instance
func New(cfg *Config) (*App, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	a := &App{DataDir: cfg.DataDir}

	// One server per data directory
	if err := a.acquireLock(); err != nil {
		return nil, err
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		a.releaseLock()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	a.DB = database

	return a, nil
}

// acquireLock acquires an exclusive file lock to prevent two servers from
// writing the same database
func (a *App) acquireLock() error {
	lockPath := filepath.Join(a.DataDir, "wisht.lock")
	a.lockFile = flock.New(lockPath)

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !locked {
		return fmt.Errorf("another wisht server is already using %s", a.DataDir)
	}

	return nil
}

// releaseLock releases the file lock
func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

// Close cleans up server resources
func (a *App) Close() error {
	var errs []error

	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	a.releaseLock()

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
