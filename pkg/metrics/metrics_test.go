package metrics_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quicknotes/pkg/adapters/memory"
	"github.com/aretw0/quicknotes/pkg/core"
	"github.com/aretw0/quicknotes/pkg/metrics"
)

type failingNotes struct{ core.NoteRepository }

func (failingNotes) SaveNote(context.Context, core.Note) error { return errors.New("boom") }

func TestInstrumentedRepositories(t *testing.T) {
	ctx := context.Background()
	c := metrics.NewCollector("quicknotes")
	notes := c.InstrumentNotes(memory.NewNoteRepository())
	categories := c.InstrumentCategories(memory.NewCategoryRepository())
	svc := core.NewService(notes, categories)

	require.True(t, svc.SeedIfNeeded(ctx))
	_, _, err := svc.GetNote(ctx, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, float64(10), testutil.ToFloat64(c.Operations.WithLabelValues("save", "notes", "success")))
	assert.Equal(t, float64(3), testutil.ToFloat64(c.Operations.WithLabelValues("save", "categories", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.Operations.WithLabelValues("fetch", "notes", "success")))
	assert.Equal(t, 5, testutil.CollectAndCount(c.Duration), "one series per operation and collection")
}

func TestInstrumentedErrorsAreCounted(t *testing.T) {
	c := metrics.NewCollector("qn")
	notes := c.InstrumentNotes(failingNotes{memory.NewNoteRepository()})

	require.Error(t, notes.SaveNote(context.Background(), core.NewNote("x", "")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.Operations.WithLabelValues("save", "notes", "error")))
}

func TestWriteTextfile(t *testing.T) {
	c := metrics.NewCollector("quicknotes")
	notes := c.InstrumentNotes(memory.NewNoteRepository())
	_, err := notes.FetchNotes(context.Background())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "quicknotes.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `quicknotes_repository_operations_total{collection="notes",operation="fetch_all",status="success"} 1`)
}

func TestComponentTypeIsForwarded(t *testing.T) {
	c := metrics.NewCollector("qn")
	notes := c.InstrumentNotes(memory.NewNoteRepository())
	comp, ok := notes.(interface{ ComponentType() string })
	require.True(t, ok)
	assert.Equal(t, "instrumented-memory-notes", comp.ComponentType())
}
