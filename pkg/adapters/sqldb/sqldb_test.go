package sqldb_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quicknotes/pkg/adapters/repotest"
	"github.com/aretw0/quicknotes/pkg/adapters/sqldb"
	"github.com/aretw0/quicknotes/pkg/core"
)

func openSQLite(t *testing.T, path string) *sqldb.Store {
	t.Helper()
	store, err := sqldb.Open(context.Background(), sqldb.Config{Driver: sqldb.DriverSQLite, DSN: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteConformance(t *testing.T) {
	repotest.Run(t, func(t *testing.T) (core.NoteRepository, core.CategoryRepository) {
		store := openSQLite(t, filepath.Join(t.TempDir(), "notes.db"))
		return store.Notes(), store.Categories()
	})
}

func TestPostgresConformance(t *testing.T) {
	dsn := os.Getenv("QUICKNOTES_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("QUICKNOTES_TEST_POSTGRES_DSN not set")
	}
	repotest.Run(t, func(t *testing.T) (core.NoteRepository, core.CategoryRepository) {
		store, err := sqldb.Open(context.Background(), sqldb.Config{Driver: sqldb.DriverPostgres, DSN: dsn})
		require.NoError(t, err)
		_, err = store.DB().Exec(`DELETE FROM notes`)
		require.NoError(t, err)
		_, err = store.DB().Exec(`DELETE FROM categories`)
		require.NoError(t, err)
		t.Cleanup(func() { _ = store.Close() })
		return store.Notes(), store.Categories()
	})
}

func TestSQLite_ForeignKeyClearsCategory(t *testing.T) {
	ctx := context.Background()
	store := openSQLite(t, filepath.Join(t.TempDir(), "fk.db"))
	notes, categories := store.Notes(), store.Categories()

	work := core.NewCategory("Work", "briefcase.fill", "F59E0B")
	require.NoError(t, categories.AddCategory(ctx, work))
	n := core.NewNote("tagged", "").WithCategory(work)
	require.NoError(t, notes.SaveNote(ctx, n))

	// Bypass the service: the schema alone must null the reference.
	require.NoError(t, categories.DeleteCategory(ctx, work.ID))

	var categoryID *string
	require.NoError(t, store.DB().QueryRow(`SELECT category_id FROM notes WHERE id = ?`, n.ID.String()).Scan(&categoryID))
	assert.Nil(t, categoryID)

	got, ok, err := notes.FetchNote(ctx, n.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Nil(t, got.Category)
}

func TestSQLite_UpsertCategoryKeepsNoteReference(t *testing.T) {
	ctx := context.Background()
	store := openSQLite(t, filepath.Join(t.TempDir(), "upsert.db"))

	work := core.NewCategory("Work", "briefcase.fill", "F59E0B")
	require.NoError(t, store.Categories().AddCategory(ctx, work))
	n := core.NewNote("tagged", "").WithCategory(work)
	require.NoError(t, store.Notes().SaveNote(ctx, n))

	require.NoError(t, store.Categories().AddCategory(ctx, work.WithName("Job")))

	got, _, err := store.Notes().FetchNote(ctx, n.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Job", got.Category.Name)
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "notes.db")

	store, err := sqldb.Open(ctx, sqldb.Config{DSN: path})
	require.NoError(t, err)
	n := core.NewNote("durable", "body")
	require.NoError(t, store.Notes().SaveNote(ctx, n))
	require.NoError(t, store.Close())

	reopened := openSQLite(t, path)
	got, ok, err := reopened.Notes().FetchNote(ctx, n.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, n, got)
}

func TestSQLite_SchemaMismatchWipes(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "old.db")

	store, err := sqldb.Open(ctx, sqldb.Config{DSN: path})
	require.NoError(t, err)
	require.NoError(t, store.Notes().SaveNote(ctx, core.NewNote("stale", "")))
	_, err = store.DB().Exec(`UPDATE schema_meta SET value = '0' WHERE name = 'version'`)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened := openSQLite(t, path)
	all, err := reopened.Notes().FetchNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSQLite_SeedThroughService(t *testing.T) {
	ctx := context.Background()
	store := openSQLite(t, filepath.Join(t.TempDir(), "seed.db"))
	svc := core.NewService(store.Notes(), store.Categories())

	require.True(t, svc.SeedIfNeeded(ctx))
	require.False(t, svc.SeedIfNeeded(ctx))

	notes, err := svc.ListNotes(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 10)

	found := false
	for _, n := range core.SearchNotes(notes, "MILK") {
		if n.Title == "Shopping List" {
			found = true
			require.NotNil(t, n.Category)
			assert.Equal(t, "Personal", n.Category.Name)
		}
	}
	assert.True(t, found)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := sqldb.Open(context.Background(), sqldb.Config{Driver: "oracle"})
	assert.Error(t, err)
}

func TestStore_State(t *testing.T) {
	store := openSQLite(t, filepath.Join(t.TempDir(), "state.db"))
	st := store.State().(sqldb.StoreState)
	assert.Equal(t, sqldb.DriverSQLite, st.Driver)
	assert.Equal(t, "sqlite-notes", store.Notes().ComponentType())
}
