// Package repotest holds the behaviour every note and category backend
// must share. Adapter tests call Run with a factory for fresh, empty stores.
package repotest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quicknotes/pkg/core"
)

// Factory returns empty repositories. Implementations register their own cleanup.
type Factory func(t *testing.T) (core.NoteRepository, core.CategoryRepository)

// Run executes the conformance suite against repositories produced by f.
func Run(t *testing.T, f Factory) {
	t.Run("NotesRoundTrip", func(t *testing.T) { testNotesRoundTrip(t, f) })
	t.Run("NotesOrdering", func(t *testing.T) { testNotesOrdering(t, f) })
	t.Run("SaveReplaces", func(t *testing.T) { testSaveReplaces(t, f) })
	t.Run("UpdateIdempotent", func(t *testing.T) { testUpdateIdempotent(t, f) })
	t.Run("UpdateUnknownIgnored", func(t *testing.T) { testUpdateUnknownIgnored(t, f) })
	t.Run("DeleteNote", func(t *testing.T) { testDeleteNote(t, f) })
	t.Run("CategoriesOrdering", func(t *testing.T) { testCategoriesOrdering(t, f) })
	t.Run("CategoryCRUD", func(t *testing.T) { testCategoryCRUD(t, f) })
	t.Run("ServiceCascade", func(t *testing.T) { testServiceCascade(t, f) })
	t.Run("CategoryRenameVisibleOnNotes", func(t *testing.T) { testCategoryRenameVisibleOnNotes(t, f) })
	t.Run("ConcurrentMutations", func(t *testing.T) { testConcurrentMutations(t, f) })
}

var epoch = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func stamp(n core.Note, offset time.Duration) core.Note {
	at := epoch.Add(offset)
	n.CreatedAt = at
	return n.Touch(at)
}

func testNotesRoundTrip(t *testing.T, f Factory) {
	notes, categories := f(t)
	ctx := context.Background()

	work := core.NewCategory("Work", "briefcase.fill", "F59E0B")
	require.NoError(t, categories.AddCategory(ctx, work))

	n := stamp(core.NewNote("Round trip", "line one\nline two"), 0).
		WithCategory(work).WithPinned(true).WithCompleted(true)
	require.NoError(t, notes.SaveNote(ctx, n))

	got, ok, err := notes.FetchNote(ctx, n.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, n.ID, got.ID)
	assert.Equal(t, n.Title, got.Title)
	assert.Equal(t, n.Content, got.Content)
	assert.True(t, got.Pinned)
	assert.False(t, got.Archived)
	assert.True(t, got.Completed)
	assert.True(t, n.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, n.ModifiedAt.Equal(got.ModifiedAt))
	require.NotNil(t, got.Category)
	assert.Equal(t, work.ID, got.Category.ID)
	assert.Equal(t, "Work", got.Category.Name)

	_, ok, err = notes.FetchNote(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

func testUpdateIdempotent(t *testing.T, f Factory) {
	notes, _ := f(t)
	ctx := context.Background()

	n := stamp(core.NewNote("draft", "v1"), 0)
	require.NoError(t, notes.SaveNote(ctx, n))

	edited := n.WithContent("v2").Touch(epoch.Add(time.Minute))
	require.NoError(t, notes.UpdateNote(ctx, edited))
	once, err := notes.FetchNotes(ctx)
	require.NoError(t, err)

	require.NoError(t, notes.UpdateNote(ctx, edited))
	twice, err := notes.FetchNotes(ctx)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	require.Len(t, twice, 1)
	assert.Equal(t, "v2", twice[0].Content)
}

func testNotesOrdering(t *testing.T, f Factory) {
	notes, _ := f(t)
	ctx := context.Background()

	old := stamp(core.NewNote("old", ""), 0)
	mid := stamp(core.NewNote("mid", ""), time.Hour)
	recent := stamp(core.NewNote("recent", ""), 2*time.Hour)
	for _, n := range []core.Note{mid, old, recent} {
		require.NoError(t, notes.SaveNote(ctx, n))
	}

	got, err := notes.FetchNotes(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []uuid.UUID{recent.ID, mid.ID, old.ID}, []uuid.UUID{got[0].ID, got[1].ID, got[2].ID})
}

func testSaveReplaces(t *testing.T, f Factory) {
	notes, _ := f(t)
	ctx := context.Background()

	n := stamp(core.NewNote("v1", ""), 0)
	require.NoError(t, notes.SaveNote(ctx, n))
	require.NoError(t, notes.SaveNote(ctx, n.WithTitle("v2").Touch(epoch.Add(time.Minute))))

	all, err := notes.FetchNotes(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "v2", all[0].Title)

	require.NoError(t, notes.UpdateNote(ctx, all[0].WithArchived(true)))
	got, _, err := notes.FetchNote(ctx, n.ID)
	require.NoError(t, err)
	assert.True(t, got.Archived)
}

func testUpdateUnknownIgnored(t *testing.T, f Factory) {
	notes, categories := f(t)
	ctx := context.Background()

	require.NoError(t, notes.UpdateNote(ctx, stamp(core.NewNote("ghost", ""), 0)))
	all, err := notes.FetchNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, categories.UpdateCategory(ctx, core.NewCategory("ghost", "", "")))
	cats, err := categories.FetchCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func testDeleteNote(t *testing.T, f Factory) {
	notes, _ := f(t)
	ctx := context.Background()

	a := stamp(core.NewNote("a", ""), 0)
	b := stamp(core.NewNote("b", ""), time.Second)
	require.NoError(t, notes.SaveNote(ctx, a))
	require.NoError(t, notes.SaveNote(ctx, b))

	require.NoError(t, notes.DeleteNote(ctx, a.ID))
	require.NoError(t, notes.DeleteNote(ctx, uuid.New()))

	all, err := notes.FetchNotes(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, b.ID, all[0].ID)
}

func testCategoriesOrdering(t *testing.T, f Factory) {
	_, categories := f(t)
	ctx := context.Background()

	for _, name := range []string{"work", "Ideas", "personal", "Archive"} {
		require.NoError(t, categories.AddCategory(ctx, core.NewCategory(name, "", "")))
	}
	got, err := categories.FetchCategories(ctx)
	require.NoError(t, err)

	names := make([]string, len(got))
	for i, c := range got {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"Archive", "Ideas", "personal", "work"}, names)
}

func testCategoryCRUD(t *testing.T, f Factory) {
	_, categories := f(t)
	ctx := context.Background()

	c := core.NewCategory("Travel", "star.fill", "EF4444")
	require.NoError(t, categories.AddCategory(ctx, c))

	got, ok, err := categories.FetchCategory(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Travel", got.Name)
	assert.Equal(t, "star.fill", got.Icon)
	assert.Equal(t, "EF4444", got.ColorHex)

	require.NoError(t, categories.UpdateCategory(ctx, got.WithName("Trips")))
	got, _, err = categories.FetchCategory(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Trips", got.Name)

	// Adding with an existing ID replaces instead of duplicating.
	require.NoError(t, categories.AddCategory(ctx, got.WithIcon("gift.fill")))
	all, err := categories.FetchCategories(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "gift.fill", all[0].Icon)

	require.NoError(t, categories.DeleteCategory(ctx, c.ID))
	_, ok, err = categories.FetchCategory(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func testServiceCascade(t *testing.T, f Factory) {
	notes, categories := f(t)
	ctx := context.Background()
	svc := core.NewService(notes, categories)

	work := core.NewCategory("Work", "briefcase.fill", "F59E0B")
	require.NoError(t, svc.AddCategory(ctx, work))
	n := stamp(core.NewNote("tagged", ""), 0).WithCategory(work)
	require.NoError(t, svc.SaveNote(ctx, n))

	require.NoError(t, svc.DeleteCategory(ctx, work.ID))

	got, ok, err := svc.GetNote(ctx, n.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Nil(t, got.Category)
	assert.True(t, got.ModifiedAt.After(n.ModifiedAt))

	cats, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func testCategoryRenameVisibleOnNotes(t *testing.T, f Factory) {
	notes, categories := f(t)
	ctx := context.Background()

	work := core.NewCategory("Work", "briefcase.fill", "F59E0B")
	require.NoError(t, categories.AddCategory(ctx, work))
	n := stamp(core.NewNote("standup", ""), 0).WithCategory(work)
	require.NoError(t, notes.SaveNote(ctx, n))

	require.NoError(t, categories.UpdateCategory(ctx, work.WithName("Job").WithColorHex("10B981")))

	got, ok, err := notes.FetchNote(ctx, n.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Job", got.Category.Name)
	assert.Equal(t, "10B981", got.Category.ColorHex)

	all, err := notes.FetchNotes(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].Category)
	assert.Equal(t, "Job", all[0].Category.Name)
}

func testConcurrentMutations(t *testing.T, f Factory) {
	notes, categories := f(t)
	ctx := context.Background()

	const workers, perWorker = 8, 10
	var wg sync.WaitGroup
	errs := make(chan error, workers*perWorker*4)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()

			c := core.NewCategory(fmt.Sprintf("worker %d", w), "", "")
			errs <- categories.AddCategory(ctx, c)
			errs <- categories.UpdateCategory(ctx, c.WithName(fmt.Sprintf("worker %d renamed", w)))
			if w%2 == 1 {
				errs <- categories.DeleteCategory(ctx, c.ID)
			}

			for i := 0; i < perWorker; i++ {
				n := stamp(core.NewNote("concurrent", ""), time.Duration(w*perWorker+i)*time.Millisecond)
				errs <- notes.SaveNote(ctx, n)
				errs <- notes.UpdateNote(ctx, n.WithContent("updated"))
				if i%2 == 0 {
					errs <- notes.DeleteNote(ctx, n.ID)
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	all, err := notes.FetchNotes(ctx)
	require.NoError(t, err)
	assert.Len(t, all, workers*perWorker/2, "adds minus deletes")
	seen := make(map[uuid.UUID]bool, len(all))
	for _, n := range all {
		assert.False(t, seen[n.ID], "duplicate note id %s", n.ID)
		seen[n.ID] = true
		assert.Equal(t, "updated", n.Content)
	}

	cats, err := categories.FetchCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, workers/2)
	seenCats := make(map[uuid.UUID]bool, len(cats))
	for _, c := range cats {
		assert.False(t, seenCats[c.ID], "duplicate category id %s", c.ID)
		seenCats[c.ID] = true
		assert.Contains(t, c.Name, "renamed")
	}
}
