package quicknotes

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/quicknotes/internal/platform"
	"github.com/aretw0/quicknotes/pkg/core"
	"github.com/aretw0/quicknotes/pkg/metrics"
)

// --- Types ---

type (
	Note        = core.Note
	Category    = core.Category
	Service     = core.Service
	Preferences = core.Preferences
	ListFilter  = core.ListFilter
	SortOrder   = core.SortOrder
)

// --- Configuration ---

// Option defines a functional option for configuring QuickNotes.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithAdapter forces the storage backend by name: "memory", "sqlite" or "postgres".
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithRepositories allows injecting custom repositories.
func WithRepositories(notes core.NoteRepository, categories core.CategoryRepository) Option {
	return platform.WithRepositories(notes, categories)
}

// WithSeed enables or disables populating an empty store with sample data.
func WithSeed(enabled bool) Option {
	return platform.WithSeed(enabled)
}

// WithClock overrides the time source used to stamp modifications.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithMetrics records repository calls in the given Prometheus collector.
func WithMetrics(c *metrics.Collector) Option {
	return platform.WithMetrics(c)
}

// --- Factory ---

// New creates a new QuickNotes Service. See platform.Init for how uri
// selects the backend.
func New(ctx context.Context, uri string, opts ...Option) (*core.Service, error) {
	return platform.New(ctx, uri, opts...)
}
