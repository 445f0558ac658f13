// Package fs keeps user preferences in a YAML file and watches it for
// changes made by other processes.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/quicknotes/pkg/core"
)

var _ core.PreferencesStore = (*PreferencesFile)(nil)

// PreferencesFile is a core.PreferencesStore backed by a YAML document.
type PreferencesFile struct {
	path   string
	logger *slog.Logger

	mu            sync.RWMutex
	watcherActive bool
}

// NewPreferencesFile returns a store for the file at path. The file is
// created on the first Save.
func NewPreferencesFile(path string, logger *slog.Logger) *PreferencesFile {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &PreferencesFile{path: path, logger: logger}
}

// Path returns the location of the YAML file.
func (p *PreferencesFile) Path() string { return p.path }

// Load reads the file. A missing file yields the defaults; keys absent from
// the file keep their default value. An unknown sort order falls back to
// newest-first.
func (p *PreferencesFile) Load(ctx context.Context) (core.Preferences, error) {
	prefs := core.DefaultPreferences()

	data, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return prefs, nil
	}
	if err != nil {
		return prefs, fmt.Errorf("read preferences: %w", err)
	}
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return core.DefaultPreferences(), fmt.Errorf("decode preferences %s: %w", p.path, err)
	}
	if _, err := core.ParseSortOrder(string(prefs.SortOrder)); err != nil {
		p.logger.Warn("ignoring stored sort order", "error", err)
		prefs.SortOrder = core.SortNewestFirst
	}
	if prefs.SortOrder == "" {
		prefs.SortOrder = core.SortNewestFirst
	}
	return prefs, nil
}

// Save writes the whole document atomically.
func (p *PreferencesFile) Save(ctx context.Context, prefs core.Preferences) error {
	data, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := WriteFileAtomic(p.path, data, 0o644); err != nil {
		return err
	}
	p.logger.Debug("preferences saved", "path", p.path)
	return nil
}

func (p *PreferencesFile) setWatcherActive(active bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.watcherActive = active
}
