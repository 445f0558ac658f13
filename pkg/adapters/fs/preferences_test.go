package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quicknotes/pkg/adapters/fs"
	"github.com/aretw0/quicknotes/pkg/core"
)

func TestPreferencesFile_MissingFileYieldsDefaults(t *testing.T) {
	store := fs.NewPreferencesFile(filepath.Join(t.TempDir(), "prefs.yaml"), nil)

	p, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, core.DefaultPreferences(), p)
}

func TestPreferencesFile_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "config", "prefs.yaml")
	store := fs.NewPreferencesFile(path, nil)

	want := core.Preferences{
		SortOrder:           core.SortTitleDescending,
		DarkMode:            true,
		OnboardingCompleted: true,
	}
	require.NoError(t, store.Save(ctx, want))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sort_order: title-descending")

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPreferencesFile_PartialAndInvalid(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	store := fs.NewPreferencesFile(path, nil)

	require.NoError(t, os.WriteFile(path, []byte("dark_mode: true\nsort_order: sideways\n"), 0o644))
	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.DarkMode)
	assert.True(t, got.NotificationsEnabled, "absent keys keep their default")
	assert.Equal(t, core.SortNewestFirst, got.SortOrder)

	require.NoError(t, os.WriteFile(path, []byte("dark_mode: [\n"), 0o644))
	_, err = store.Load(ctx)
	assert.Error(t, err)
}

func TestPreferencesFile_Watch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	path := filepath.Join(t.TempDir(), "prefs.yaml")
	store := fs.NewPreferencesFile(path, nil)
	require.NoError(t, store.Save(ctx, core.DefaultPreferences()))

	changes, err := store.Watch(ctx)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return store.State().(fs.PreferencesState).WatcherActive
	}, time.Second, 10*time.Millisecond)

	updated := core.DefaultPreferences()
	updated.DarkMode = true
	require.NoError(t, fs.NewPreferencesFile(path, nil).Save(ctx, updated))

	select {
	case got, ok := <-changes:
		require.True(t, ok)
		assert.True(t, got.DarkMode)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for preferences change")
	}

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-changes:
			return !ok
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
	assert.False(t, store.State().(fs.PreferencesState).WatcherActive)
}
