package fs

import (
	"github.com/aretw0/introspection"
)

// PreferencesState exposes internal state for observability.
type PreferencesState struct {
	Path          string `json:"path"`
	WatcherActive bool   `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (p *PreferencesFile) State() any {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return PreferencesState{Path: p.path, WatcherActive: p.watcherActive}
}

// ComponentType implements introspection.Component.
func (p *PreferencesFile) ComponentType() string {
	return "preferences-file"
}

var _ introspection.Introspectable = (*PreferencesFile)(nil)
var _ introspection.Component = (*PreferencesFile)(nil)
