package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/aretw0/quicknotes/pkg/core"
)

var _ core.NoteRepository = (*NoteRepository)(nil)

// NoteRepository stores notes in the notes table. Categories are joined in
// Go from a full category scan, not in SQL.
type NoteRepository struct {
	store *Store
}

const noteColumns = `id, title, content, category_id, is_pinned, is_archived, is_completed, created_at_millis, modified_at_millis`

func (r *NoteRepository) FetchNotes(ctx context.Context) ([]core.Note, error) {
	categories, err := r.categoryMap(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.store.query(ctx, `SELECT `+noteColumns+` FROM notes ORDER BY modified_at_millis DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("select notes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []core.Note
	for rows.Next() {
		n, err := scanNote(rows, categories)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *NoteRepository) FetchNote(ctx context.Context, id uuid.UUID) (core.Note, bool, error) {
	categories, err := r.categoryMap(ctx)
	if err != nil {
		return core.Note{}, false, err
	}
	row := r.store.queryRow(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = ?`, id.String())
	n, err := scanNote(row, categories)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Note{}, false, nil
	}
	if err != nil {
		return core.Note{}, false, err
	}
	return n, true, nil
}

// SaveNote upserts the note. The referenced category must exist.
func (r *NoteRepository) SaveNote(ctx context.Context, n core.Note) error {
	_, err := r.store.exec(ctx, `INSERT INTO notes (`+noteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			category_id = excluded.category_id,
			is_pinned = excluded.is_pinned,
			is_archived = excluded.is_archived,
			is_completed = excluded.is_completed,
			created_at_millis = excluded.created_at_millis,
			modified_at_millis = excluded.modified_at_millis`,
		n.ID.String(), n.Title, n.Content, categoryArg(n),
		n.Pinned, n.Archived, n.Completed, n.CreatedAt.UnixMilli(), n.ModifiedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("upsert note: %w", err)
	}
	return nil
}

// UpdateNote rewrites an existing row; no matching row is not an error.
func (r *NoteRepository) UpdateNote(ctx context.Context, n core.Note) error {
	res, err := r.store.exec(ctx, `UPDATE notes
		SET title = ?, content = ?, category_id = ?, is_pinned = ?, is_archived = ?, is_completed = ?,
			created_at_millis = ?, modified_at_millis = ?
		WHERE id = ?`,
		n.Title, n.Content, categoryArg(n), n.Pinned, n.Archived, n.Completed,
		n.CreatedAt.UnixMilli(), n.ModifiedAt.UnixMilli(), n.ID.String())
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		r.store.logger.Debug("update of unknown note ignored", "id", n.ID)
	}
	return nil
}

func (r *NoteRepository) DeleteNote(ctx context.Context, id uuid.UUID) error {
	if _, err := r.store.exec(ctx, `DELETE FROM notes WHERE id = ?`, id.String()); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

func (r *NoteRepository) categoryMap(ctx context.Context) (map[string]core.Category, error) {
	categories, err := r.store.Categories().FetchCategories(ctx)
	if err != nil {
		return nil, err
	}
	m := make(map[string]core.Category, len(categories))
	for _, c := range categories {
		m[c.ID.String()] = c
	}
	return m, nil
}

func categoryArg(n core.Note) sql.NullString {
	if n.Category == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: n.Category.ID.String(), Valid: true}
}

func scanNote(s scanner, categories map[string]core.Category) (core.Note, error) {
	var (
		n                 core.Note
		id                string
		categoryID        sql.NullString
		created, modified int64
	)
	err := s.Scan(&id, &n.Title, &n.Content, &categoryID,
		&n.Pinned, &n.Archived, &n.Completed, &created, &modified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return n, err
		}
		return n, fmt.Errorf("scan note: %w", err)
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return n, fmt.Errorf("note id %q: %w", id, err)
	}
	n.ID = parsed
	n.CreatedAt = fromMillis(created)
	n.ModifiedAt = fromMillis(modified)
	if categoryID.Valid {
		// A dangling reference reads as uncategorized.
		if c, ok := categories[categoryID.String]; ok {
			n.Category = &c
		}
	}
	return n, nil
}
