package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/aretw0/quicknotes/pkg/core"
)

var _ core.CategoryRepository = (*CategoryRepository)(nil)

// CategoryRepository keeps categories in insertion order behind a mutex.
// It does not touch notes: unassigning deleted categories is the
// service's job.
type CategoryRepository struct {
	mu         sync.Mutex
	categories []core.Category
}

func NewCategoryRepository(initial ...core.Category) *CategoryRepository {
	r := &CategoryRepository{}
	for _, c := range initial {
		r.upsert(c)
	}
	return r
}

// FetchCategories returns a snapshot sorted by name, case-insensitive.
func (r *CategoryRepository) FetchCategories(ctx context.Context) ([]core.Category, error) {
	r.mu.Lock()
	out := make([]core.Category, len(r.categories))
	copy(out, r.categories)
	r.mu.Unlock()

	core.SortCategoriesByName(out)
	return out, nil
}

func (r *CategoryRepository) FetchCategory(ctx context.Context, id uuid.UUID) (core.Category, bool, error) {
	c, ok := r.get(id)
	return c, ok, nil
}

func (r *CategoryRepository) get(id uuid.UUID) (core.Category, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.indexOf(id); i >= 0 {
		return r.categories[i], true
	}
	return core.Category{}, false
}

func (r *CategoryRepository) AddCategory(ctx context.Context, c core.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upsert(c)
	return nil
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, c core.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.indexOf(c.ID); i >= 0 {
		r.categories[i] = c
	}
	return nil
}

// DeleteCategory removes every category with the given ID.
func (r *CategoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.categories[:0]
	for _, c := range r.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	clear(r.categories[len(kept):])
	r.categories = kept
	return nil
}

func (r *CategoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.categories)
}

func (r *CategoryRepository) upsert(c core.Category) {
	if i := r.indexOf(c.ID); i >= 0 {
		r.categories[i] = c
		return
	}
	r.categories = append(r.categories, c)
}

func (r *CategoryRepository) indexOf(id uuid.UUID) int {
	for i := range r.categories {
		if r.categories[i].ID == id {
			return i
		}
	}
	return -1
}
