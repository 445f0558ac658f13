package platform

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/quicknotes/pkg/core"
)

// New opens the backend and wires the domain service on top of it.
//
//	svc, err := quicknotes.New(ctx, "notes.db")
//
// The URI argument is backend-specific (see Init). Durable backends are
// seeded once, when they hold no notes; the memory backend gets its
// fixtures at construction.
func New(ctx context.Context, uri string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	backend, err := initBackend(ctx, uri, o)
	if err != nil {
		return nil, err
	}

	notes, categories := backend.Notes, backend.Categories
	if o.collector != nil {
		notes = o.collector.InstrumentNotes(notes)
		categories = o.collector.InstrumentCategories(categories)
	}

	service := core.NewService(notes, categories,
		core.WithLogger(o.logger.With("component", "service")),
		core.WithClock(o.clock),
		core.WithCloser(backend.Closer),
		core.WithBackendName(backend.Name),
	)

	if o.seed && backend.Name != AdapterMemory {
		service.SeedIfNeeded(ctx)
	}
	o.logger.Debug("service ready", "backend", backend.Name)
	return service, nil
}
