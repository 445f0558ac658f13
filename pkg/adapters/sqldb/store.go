// Package sqldb is the durable backend: notes and categories in two
// relational tables, on SQLite (modernc.org/sqlite) or PostgreSQL (pgx).
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	_ "modernc.org/sqlite"             // pure go sqlite driver
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	defaultSQLitePath = "quicknotes.db"
	sqlitePragmas     = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
)

// Config selects the database and how to reach it.
type Config struct {
	// Driver is DriverSQLite or DriverPostgres. Empty means SQLite.
	Driver string
	// DSN is a file path for SQLite or a connection URL for PostgreSQL.
	DSN    string
	Logger *slog.Logger
}

// Store owns the database handle shared by the note and category repositories.
type Store struct {
	db      *sql.DB
	dialect dialect
	logger  *slog.Logger
	dsn     string
}

// Open connects to the database and makes sure the schema is current.
// A schema written by a different version is dropped and recreated.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var (
		db  *sql.DB
		d   dialect
		err error
	)
	switch cfg.Driver {
	case "", DriverSQLite:
		d = sqliteDialect
		db, err = openSQLite(cfg.DSN)
	case DriverPostgres:
		d = postgresDialect
		db, err = sql.Open("pgx", cfg.DSN)
		if err != nil {
			err = fmt.Errorf("open postgres: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", d.name, err)
	}

	s := &Store{db: db, dialect: d, logger: logger, dsn: cfg.DSN}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Debug("sql store ready", "driver", d.name)
	return s, nil
}

func openSQLite(path string) (*sql.DB, error) {
	if path == "" {
		path = defaultSQLitePath
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&" + sqlitePragmas
	} else {
		dsn += "?" + sqlitePragmas
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite allows one writer; a single connection also keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)
	return db, nil
}

// Notes returns the note repository backed by this store.
func (s *Store) Notes() *NoteRepository { return &NoteRepository{store: s} }

// Categories returns the category repository backed by this store.
func (s *Store) Categories() *CategoryRepository { return &CategoryRepository{store: s} }

// Driver reports the dialect in use.
func (s *Store) Driver() string { return s.dialect.name }

// DB exposes the underlying handle for tests.
func (s *Store) DB() *sql.DB { return s.db }

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

type dialect struct {
	name        string
	placeholder func(n int) string
}

var (
	sqliteDialect   = dialect{name: DriverSQLite, placeholder: func(int) string { return "?" }}
	postgresDialect = dialect{name: DriverPostgres, placeholder: func(n int) string { return "$" + strconv.Itoa(n) }}
)

// rebind rewrites '?' placeholders into the dialect's form.
func (d dialect) rebind(query string) string {
	if d.name == DriverSQLite {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString(d.placeholder(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *Store) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, s.dialect.rebind(query), args...)
}

func (s *Store) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return s.db.QueryContext(ctx, s.dialect.rebind(query), args...)
}

func (s *Store) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return s.db.QueryRowContext(ctx, s.dialect.rebind(query), args...)
}
