package db

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"

	"github.com/hpungsan/todo/internal/errors"
)

// CurrentSchemaVersion is the latest schema version.
// Bump this when adding migrations.
const CurrentSchemaVersion = 1

// DefaultBusyTimeout is used when Options.BusyTimeout is zero.
const DefaultBusyTimeout = 5 * time.Second

// Options tunes how a Store opens its connections.
type Options struct {
	BusyTimeout time.Duration
	Logger      *log.Logger
}

// Store is the SQLite-backed todo store. It holds no open handle:
// every operation opens its own connection scope and closes it before returning.
type Store struct {
	path        string
	busyTimeout time.Duration
	logger      *log.Logger
}

// NewStore returns a Store for the database file at path without touching the file.
func NewStore(path string, opts Options) *Store {
	if opts.BusyTimeout <= 0 {
		opts.BusyTimeout = DefaultBusyTimeout
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Store{
		path:        path,
		busyTimeout: opts.BusyTimeout,
		logger:      opts.Logger,
	}
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Init opens the database at path and ensures the schema exists.
// A connection failure is returned as ErrConnectionFailed. Schema errors,
// including "table already exists", are logged and swallowed so a usable
// database never blocks startup.
func Init(ctx context.Context, path string, opts Options) (*Store, error) {
	s := NewStore(path, opts)

	db, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := verifyWALMode(ctx, db); err != nil {
		s.logger.Warn("journal mode check failed", "path", path, "err", err)
	}

	if err := migrate(ctx, db); err != nil {
		s.logger.Warn("schema init failed", "path", path, "err", err)
	} else {
		s.logger.Debug("schema ready", "path", path, "version", CurrentSchemaVersion)
	}

	return s, nil
}

// Open opens a handle on the database file with the store pragmas applied.
// Pragmas in the connection string apply to every connection.
func Open(path string, busyTimeout time.Duration) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)", path, busyTimeout.Milliseconds())
	return sql.Open("sqlite", dsn)
}

// connect opens a single-connection handle and verifies it.
// The caller owns the handle and must Close it on every path.
func (s *Store) connect(ctx context.Context) (*sql.DB, error) {
	db, err := Open(s.path, s.busyTimeout)
	if err != nil {
		return nil, errors.NewConnectionFailed(err)
	}
	db.SetMaxOpenConns(1)

	// sql.Open is lazy; the ping is where SQLite actually opens the file
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.NewConnectionFailed(err)
	}
	return db, nil
}

// migrate applies schema migrations based on user_version.
func migrate(ctx context.Context, db *sql.DB) error {
	version, err := GetUserVersion(ctx, db)
	if err != nil {
		return err
	}

	// Migration 0 -> 1: todo table. id is the internal rowid; todo_id is the 16-byte ULID.
	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS todo (
		  id        INTEGER PRIMARY KEY,
		  todo_id   BLOB NOT NULL UNIQUE,
		  name      TEXT NOT NULL,
		  completed BOOLEAN NOT NULL DEFAULT 0
		);
		`
		if _, err := db.ExecContext(ctx, schema); err != nil {
			return fmt.Errorf("migration 1 failed: %w", err)
		}
		if err := SetUserVersion(ctx, db, 1); err != nil {
			return err
		}
	}

	return nil
}

// verifyWALMode checks that WAL mode is active (set via connection string).
func verifyWALMode(ctx context.Context, db *sql.DB) error {
	var journalMode string
	if err := db.QueryRowContext(ctx, "PRAGMA journal_mode;").Scan(&journalMode); err != nil {
		return fmt.Errorf("failed to verify journal mode: %w", err)
	}
	if journalMode != "wal" {
		return fmt.Errorf("expected WAL mode, got %s", journalMode)
	}
	return nil
}

// GetUserVersion returns the current schema version (user_version pragma).
func GetUserVersion(ctx context.Context, db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version;").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get user_version: %w", err)
	}
	return version, nil
}

// SetUserVersion sets the schema version (user_version pragma).
func SetUserVersion(ctx context.Context, db *sql.DB, version int) error {
	_, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version=%d", version))
	if err != nil {
		return fmt.Errorf("failed to set user_version: %w", err)
	}
	return nil
}
