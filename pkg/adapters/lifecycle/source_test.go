package lifecycle_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quicknotes/pkg/adapters/lifecycle"
	"github.com/aretw0/quicknotes/pkg/core"
)

func TestPreferencesSource(t *testing.T) {
	changes := make(chan core.Preferences, 2)
	src := lifecycle.NewPreferencesSource(changes)
	require.NoError(t, src.Start(t.Context()))

	p := core.DefaultPreferences()
	p.DarkMode = true
	changes <- p
	close(changes)

	select {
	case e, ok := <-src.Events():
		require.True(t, ok)
		changed, isPrefs := e.(lifecycle.PreferencesChanged)
		require.True(t, isPrefs)
		assert.Equal(t, p, changed.Preferences)
		assert.Contains(t, e.String(), "dark_mode=true")
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}

	select {
	case _, ok := <-src.Events():
		assert.False(t, ok, "events closed after the input channel")
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for close")
	}
}
