package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/quicknotes/pkg/core"
)

var _ core.CategoryRepository = (*CategoryRepository)(nil)

// CategoryRepository stores categories in the categories table.
type CategoryRepository struct {
	store *Store
}

const categoryColumns = `id, name, icon, color_hex, created_at_millis, modified_at_millis`

func (r *CategoryRepository) FetchCategories(ctx context.Context) ([]core.Category, error) {
	rows, err := r.store.query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY LOWER(name) ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []core.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CategoryRepository) FetchCategory(ctx context.Context, id uuid.UUID) (core.Category, bool, error) {
	row := r.store.queryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = ?`, id.String())
	c, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Category{}, false, nil
	}
	if err != nil {
		return core.Category{}, false, err
	}
	return c, true, nil
}

// AddCategory upserts. An existing row is updated in place so notes that
// reference it keep their category_id.
func (r *CategoryRepository) AddCategory(ctx context.Context, c core.Category) error {
	_, err := r.store.exec(ctx, `INSERT INTO categories (`+categoryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			icon = excluded.icon,
			color_hex = excluded.color_hex,
			created_at_millis = excluded.created_at_millis,
			modified_at_millis = excluded.modified_at_millis`,
		c.ID.String(), c.Name, c.Icon, c.ColorHex, c.CreatedAt.UnixMilli(), c.ModifiedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("upsert category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, c core.Category) error {
	_, err := r.store.exec(ctx, `UPDATE categories
		SET name = ?, icon = ?, color_hex = ?, created_at_millis = ?, modified_at_millis = ?
		WHERE id = ?`,
		c.Name, c.Icon, c.ColorHex, c.CreatedAt.UnixMilli(), c.ModifiedAt.UnixMilli(), c.ID.String())
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// DeleteCategory removes the row; the foreign key clears notes.category_id.
func (r *CategoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := r.store.exec(ctx, `DELETE FROM categories WHERE id = ?`, id.String()); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(s scanner) (core.Category, error) {
	var (
		c                 core.Category
		id                string
		created, modified int64
	)
	if err := s.Scan(&id, &c.Name, &c.Icon, &c.ColorHex, &created, &modified); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c, err
		}
		return c, fmt.Errorf("scan category: %w", err)
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return c, fmt.Errorf("category id %q: %w", id, err)
	}
	c.ID = parsed
	c.CreatedAt = fromMillis(created)
	c.ModifiedAt = fromMillis(modified)
	return c, nil
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
