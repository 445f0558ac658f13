package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// schemaVersion is bumped whenever the table layout changes. There are no
// migrations: a store written by another version is wiped.
const schemaVersion = "1"

var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		icon TEXT NOT NULL,
		color_hex TEXT NOT NULL,
		created_at_millis BIGINT NOT NULL,
		modified_at_millis BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		category_id TEXT NULL REFERENCES categories(id) ON DELETE SET NULL,
		is_pinned BOOLEAN NOT NULL DEFAULT FALSE,
		is_archived BOOLEAN NOT NULL DEFAULT FALSE,
		is_completed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at_millis BIGINT NOT NULL,
		modified_at_millis BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notes_category_id ON notes(category_id)`,
}

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.exec(ctx, `CREATE TABLE IF NOT EXISTS schema_meta (
		name TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("ensure schema_meta: %w", err)
	}

	var stored string
	err := s.queryRow(ctx, `SELECT value FROM schema_meta WHERE name = ?`, "version").Scan(&stored)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case stored != schemaVersion:
		s.logger.Warn("schema version mismatch, recreating tables", "stored", stored, "want", schemaVersion)
		for _, table := range []string{"notes", "categories"} {
			if _, err := s.exec(ctx, `DROP TABLE IF EXISTS `+table); err != nil {
				return fmt.Errorf("drop %s: %w", table, err)
			}
		}
	}

	for _, stmt := range schemaDDL {
		if _, err := s.exec(ctx, stmt); err != nil {
			return fmt.Errorf("execute ddl: %w", err)
		}
	}
	if _, err := s.exec(ctx, `INSERT INTO schema_meta (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value`, "version", schemaVersion); err != nil {
		return fmt.Errorf("write schema version: %w", err)
	}
	return nil
}
