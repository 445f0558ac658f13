package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/quicknotes/pkg/core"
	"github.com/aretw0/quicknotes/pkg/metrics"
)

const (
	AdapterMemory   = "memory"
	AdapterSQLite   = "sqlite"
	AdapterPostgres = "postgres"
)

// options holds the internal configuration for the QuickNotes service.
type options struct {
	notes      core.NoteRepository
	categories core.CategoryRepository
	logger     *slog.Logger
	adapter    string
	seed       bool
	clock      func() time.Time
	collector  *metrics.Collector
}

// Option defines a functional option for configuring QuickNotes.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		seed: true,
	}
}

// WithLogger sets the logger for the service and the backends.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithAdapter forces the storage backend by name ("memory", "sqlite" or
// "postgres"). When unset, the backend is inferred from the URI.
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithRepositories injects custom repositories (e.g. mocks).
// If provided, no backend is opened.
func WithRepositories(notes core.NoteRepository, categories core.CategoryRepository) Option {
	return func(o *options) {
		o.notes = notes
		o.categories = categories
	}
}

// WithSeed controls whether an empty store is populated with the default
// categories and notes. Enabled by default.
func WithSeed(enabled bool) Option {
	return func(o *options) {
		o.seed = enabled
	}
}

// WithClock overrides the time source used to stamp modifications.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithMetrics instruments the repositories with the given collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *options) {
		o.collector = c
	}
}
