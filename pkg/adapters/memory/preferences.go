package memory

import (
	"context"
	"sync"

	"github.com/aretw0/quicknotes/pkg/core"
)

var _ core.PreferencesStore = (*PreferencesStore)(nil)

// PreferencesStore holds preferences in memory, starting from the defaults.
type PreferencesStore struct {
	mu    sync.RWMutex
	prefs core.Preferences
}

func NewPreferencesStore() *PreferencesStore {
	return &PreferencesStore{prefs: core.DefaultPreferences()}
}

func (s *PreferencesStore) Load(ctx context.Context) (core.Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs, nil
}

func (s *PreferencesStore) Save(ctx context.Context, p core.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = p
	return nil
}
