package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quicknotes/pkg/adapters/memory"
	"github.com/aretw0/quicknotes/pkg/adapters/repotest"
	"github.com/aretw0/quicknotes/pkg/core"
)

func TestMemoryConformance(t *testing.T) {
	repotest.Run(t, func(t *testing.T) (core.NoteRepository, core.CategoryRepository) {
		return memory.NewRepositories(nil, nil)
	})
}

func TestNoteRepository_UnlinkedKeepsSnapshot(t *testing.T) {
	ctx := context.Background()
	work := core.NewCategory("Work", "", "")
	n := core.NewNote("t", "").WithCategory(work)
	repo := memory.NewNoteRepository(n)

	got, ok, err := repo.FetchNote(ctx, n.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Work", got.Category.Name)
}

func TestNoteRepository_DeleteRemovesAllMatches(t *testing.T) {
	ctx := context.Background()
	n := core.NewNote("keep", "")
	gone := core.NewNote("gone", "")
	repo := memory.NewNoteRepository(n, gone)

	require.NoError(t, repo.DeleteNote(ctx, gone.ID))
	require.NoError(t, repo.DeleteNote(ctx, gone.ID))
	assert.Equal(t, 1, repo.Len())

	cats := memory.NewCategoryRepository(core.NewCategory("a", "", ""))
	all, _ := cats.FetchCategories(ctx)
	require.NoError(t, cats.DeleteCategory(ctx, all[0].ID))
	assert.Equal(t, 0, cats.Len())
}

func TestNoteRepository_ReturnsDetachedCopies(t *testing.T) {
	ctx := context.Background()
	work := core.NewCategory("Work", "", "")
	n := core.NewNote("t", "").WithCategory(work)
	repo := memory.NewNoteRepository(n)

	got, ok, err := repo.FetchNote(ctx, n.ID)
	require.NoError(t, err)
	require.True(t, ok)
	got.Category.Name = "mutated"

	again, _, _ := repo.FetchNote(ctx, n.ID)
	assert.Equal(t, "Work", again.Category.Name)
}

func TestNoteRepository_InitialDuplicatesCollapse(t *testing.T) {
	n := core.NewNote("v1", "")
	repo := memory.NewNoteRepository(n, n.WithTitle("v2"))
	assert.Equal(t, 1, repo.Len())

	st := repo.State().(memory.State)
	assert.Equal(t, 1, st.Items)
	assert.Equal(t, "memory-notes", repo.ComponentType())
}

func TestPreferencesStore(t *testing.T) {
	ctx := context.Background()
	s := memory.NewPreferencesStore()

	p, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, core.DefaultPreferences(), p)

	p.DarkMode = true
	require.NoError(t, s.Save(ctx, p))
	got, _ := s.Load(ctx)
	assert.True(t, got.DarkMode)
}
