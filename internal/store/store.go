package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/triviaz/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store owns the SQLite connection and hands out repositories.
type Store struct {
	db         *sql.DB
	client     *ent.Client
	seq        *sequenceCounter
	highScores *highScoreRepo
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and migrates the ent schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// A single connection keeps ":memory:" databases alive across calls
	// and serializes writers for the single-player workload.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))

	ctx := context.Background()
	if err := migrate(ctx, client); err != nil {
		client.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	seq, err := newSequenceCounter(ctx, db)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Store{
		db:         db,
		client:     client,
		seq:        seq,
		highScores: newHighScoreRepo(client),
	}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Client returns the ent client bound to this store's connection.
func (s *Store) Client() *ent.Client {
	return s.client
}

// Close closes the ent client and the database connection under it.
func (s *Store) Close() error {
	return s.client.Close()
}

// HighScores returns the high score repository backed by this store.
func (s *Store) HighScores() HighScoreRepo {
	return s.highScores
}

// EventRepo returns the event repository backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db, client: s.client, seq: s.seq}
}

// applyPragmas configures SQLite for optimal single-user performance.
// ent's SQLite migrator refuses to run unless foreign_keys is on.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// sqlite returns a statement builder for the SQLite dialect. Only the
// aggregate reports use it; everything else goes through the ent client.
func sqlite() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// DefaultDBPath resolves the database file path in priority order:
// 1. TRIVIAZ_DB environment variable
// 2. $XDG_DATA_HOME/triviaz/triviaz.db
// 3. ~/.local/share/triviaz/triviaz.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("TRIVIAZ_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "triviaz", "triviaz.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
