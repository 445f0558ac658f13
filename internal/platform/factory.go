package platform

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/quicknotes/pkg/adapters/memory"
	"github.com/aretw0/quicknotes/pkg/adapters/sqldb"
	"github.com/aretw0/quicknotes/pkg/core"
)

// Backend is an opened pair of repositories plus whatever must be closed
// when the service shuts down.
type Backend struct {
	Name       string
	Notes      core.NoteRepository
	Categories core.CategoryRepository
	Closer     io.Closer // nil for the memory backend
}

// Init opens the storage backend selected by the options or inferred from uri:
// an empty uri is the in-memory store, a postgres:// URL is PostgreSQL and
// anything else is a SQLite file path.
func Init(ctx context.Context, uri string, opts ...Option) (Backend, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initBackend(ctx, uri, o)
}

func initBackend(ctx context.Context, uri string, o *options) (Backend, error) {
	// 1. Check for injected repositories
	if o.notes != nil || o.categories != nil {
		if o.notes == nil || o.categories == nil {
			return Backend{}, fmt.Errorf("both note and category repositories must be injected")
		}
		return Backend{Name: "custom", Notes: o.notes, Categories: o.categories}, nil
	}

	// 2. Initialize based on Adapter
	switch adapter := ResolveAdapter(uri, o.adapter); adapter {
	case AdapterMemory:
		return initMemory(o), nil
	case AdapterSQLite, AdapterPostgres:
		return initSQL(ctx, adapter, uri, o.logger)
	default:
		return Backend{}, fmt.Errorf("unknown adapter: %s", adapter)
	}
}

// ResolveAdapter returns explicit when set, otherwise infers the adapter from uri.
func ResolveAdapter(uri, explicit string) string {
	if explicit != "" {
		return explicit
	}
	switch {
	case uri == "":
		return AdapterMemory
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		return AdapterPostgres
	default:
		return AdapterSQLite
	}
}

// initMemory builds the in-memory store, pre-filled with the fixtures
// unless seeding is disabled.
func initMemory(o *options) Backend {
	var (
		categories []core.Category
		notes      []core.Note
	)
	if o.seed {
		categories = core.DefaultCategories()
		notes = core.DefaultNotes(categories)
	}
	noteRepo, categoryRepo := memory.NewRepositories(categories, notes)
	return Backend{
		Name:       AdapterMemory,
		Notes:      noteRepo,
		Categories: categoryRepo,
	}
}

func initSQL(ctx context.Context, adapter, dsn string, logger *slog.Logger) (Backend, error) {
	store, err := sqldb.Open(ctx, sqldb.Config{Driver: adapter, DSN: dsn, Logger: logger})
	if err != nil {
		return Backend{}, err
	}
	return Backend{
		Name:       adapter,
		Notes:      store.Notes(),
		Categories: store.Categories(),
		Closer:     store,
	}, nil
}
