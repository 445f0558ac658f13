package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDir = "quicknotes"

// DataDir returns the per-user directory holding the database and the
// preferences file, creating it if needed.
func DataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	dir := filepath.Join(base, appDir)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return dir, nil
}

// DefaultDatabasePath is the SQLite file used when no URI is configured
// and a durable store was asked for.
func DefaultDatabasePath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "quicknotes.db"), nil
}

// DefaultPreferencesPath is the YAML preferences file location.
func DefaultPreferencesPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "preferences.yaml"), nil
}
