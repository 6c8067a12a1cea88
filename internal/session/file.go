package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/storage"
	"github.com/gofiber/storage/memory"
	"github.com/gofiber/storage/sqlite3"
	"github.com/rs/zerolog/log"
)

const (
	configDirName   = "aikya"
	sessionFileName = "session.db"
)

// DefaultPath returns the device-local session file path under the user
// config directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, ".config", configDirName, sessionFileName), nil
}

// FileStorage opens a SQLite-backed storage at path, creating the parent
// directory when needed. The file survives process restarts, which makes it
// the durable default for CLI logins.
func FileStorage(path string) (st storage.Storage, err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStorageUnavailable, err)
	}

	// MkdirAll succeeds on an existing directory even when it is not
	// writable, so probe the database file itself before handing it to the
	// backend.
	probe, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStorageUnavailable, err)
	}

	if err := probe.Close(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStorageUnavailable, err)
	}

	// the backend constructor panics instead of returning an error when the
	// database cannot be opened or migrated
	defer func() {
		if r := recover(); r != nil {
			st = nil
			err = fmt.Errorf("%w: %v", ErrStorageUnavailable, r)
		}
	}()

	st = sqlite3.New(sqlite3.Config{
		Database: path,
		Table:    "session",
	})

	return st, nil
}

// OpenDefault returns a store over the default file storage, falling back to
// a process-local memory store when the file cannot be opened. The fallback
// is logged as a warning and keeps the login usable for this process only.
func OpenDefault() *Store {
	path, err := DefaultPath()
	if err == nil {
		var st storage.Storage

		if st, err = FileStorage(path); err == nil {
			return New(st)
		}
	}

	log.Warn().Err(err).Msg("session storage unavailable, login will not survive this process")

	return New(memory.New())
}
