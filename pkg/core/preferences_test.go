package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quicknotes/pkg/core"
)

func TestParseSortOrder(t *testing.T) {
	o, err := core.ParseSortOrder("")
	require.NoError(t, err)
	assert.Equal(t, core.SortNewestFirst, o)

	for _, want := range core.SortOrders {
		got, err := core.ParseSortOrder(string(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = core.ParseSortOrder("random")
	assert.ErrorIs(t, err, core.ErrUnknownSortOrder)
	assert.True(t, core.IsValidation(err))
}

func TestPreferencesSet(t *testing.T) {
	p := core.DefaultPreferences()
	assert.Equal(t, core.SortNewestFirst, p.SortOrder)
	assert.True(t, p.NotificationsEnabled)

	p, err := p.Set("dark_mode", "on")
	require.NoError(t, err)
	assert.True(t, p.DarkMode)

	p, err = p.Set("notifications_enabled", "false")
	require.NoError(t, err)
	assert.False(t, p.NotificationsEnabled)

	p, err = p.Set("sort_order", "title-ascending")
	require.NoError(t, err)
	assert.Equal(t, core.SortTitleAscending, p.SortOrder)

	unchanged, err := p.Set("dark_mode", "maybe")
	assert.True(t, core.IsValidation(err))
	assert.Equal(t, p, unchanged)

	_, err = p.Set("font_size", "12")
	assert.True(t, core.IsValidation(err))
}
