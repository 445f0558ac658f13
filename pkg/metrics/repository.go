package metrics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/quicknotes/pkg/core"
)

const (
	collectionNotes      = "notes"
	collectionCategories = "categories"
)

type noteRepository struct {
	next core.NoteRepository
	c    *Collector
}

// InstrumentNotes wraps repo so every call is counted and timed.
func (c *Collector) InstrumentNotes(repo core.NoteRepository) core.NoteRepository {
	return &noteRepository{next: repo, c: c}
}

func (r *noteRepository) FetchNotes(ctx context.Context) (notes []core.Note, err error) {
	defer func(start time.Time) { r.c.observe("fetch_all", collectionNotes, start, err) }(time.Now())
	return r.next.FetchNotes(ctx)
}

func (r *noteRepository) FetchNote(ctx context.Context, id uuid.UUID) (n core.Note, ok bool, err error) {
	defer func(start time.Time) { r.c.observe("fetch", collectionNotes, start, err) }(time.Now())
	return r.next.FetchNote(ctx, id)
}

func (r *noteRepository) SaveNote(ctx context.Context, n core.Note) (err error) {
	defer func(start time.Time) { r.c.observe("save", collectionNotes, start, err) }(time.Now())
	return r.next.SaveNote(ctx, n)
}

func (r *noteRepository) UpdateNote(ctx context.Context, n core.Note) (err error) {
	defer func(start time.Time) { r.c.observe("update", collectionNotes, start, err) }(time.Now())
	return r.next.UpdateNote(ctx, n)
}

func (r *noteRepository) DeleteNote(ctx context.Context, id uuid.UUID) (err error) {
	defer func(start time.Time) { r.c.observe("delete", collectionNotes, start, err) }(time.Now())
	return r.next.DeleteNote(ctx, id)
}

func (r *noteRepository) ComponentType() string { return "instrumented-" + componentType(r.next) }

type categoryRepository struct {
	next core.CategoryRepository
	c    *Collector
}

// InstrumentCategories wraps repo so every call is counted and timed.
func (c *Collector) InstrumentCategories(repo core.CategoryRepository) core.CategoryRepository {
	return &categoryRepository{next: repo, c: c}
}

func (r *categoryRepository) FetchCategories(ctx context.Context) (cats []core.Category, err error) {
	defer func(start time.Time) { r.c.observe("fetch_all", collectionCategories, start, err) }(time.Now())
	return r.next.FetchCategories(ctx)
}

func (r *categoryRepository) FetchCategory(ctx context.Context, id uuid.UUID) (cat core.Category, ok bool, err error) {
	defer func(start time.Time) { r.c.observe("fetch", collectionCategories, start, err) }(time.Now())
	return r.next.FetchCategory(ctx, id)
}

func (r *categoryRepository) AddCategory(ctx context.Context, cat core.Category) (err error) {
	defer func(start time.Time) { r.c.observe("save", collectionCategories, start, err) }(time.Now())
	return r.next.AddCategory(ctx, cat)
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, cat core.Category) (err error) {
	defer func(start time.Time) { r.c.observe("update", collectionCategories, start, err) }(time.Now())
	return r.next.UpdateCategory(ctx, cat)
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) (err error) {
	defer func(start time.Time) { r.c.observe("delete", collectionCategories, start, err) }(time.Now())
	return r.next.DeleteCategory(ctx, id)
}

func (r *categoryRepository) ComponentType() string {
	return "instrumented-" + componentType(r.next)
}

func componentType(v any) string {
	if comp, ok := v.(interface{ ComponentType() string }); ok {
		return comp.ComponentType()
	}
	return "repository"
}
