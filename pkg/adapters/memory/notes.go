package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/aretw0/quicknotes/pkg/core"
)

var _ core.NoteRepository = (*NoteRepository)(nil)

// NoteRepository keeps notes in insertion order behind a mutex.
//
// When linked to a CategoryRepository (see NewRepositories), fetched notes
// carry the current category record for their stored category ID, and a
// reference to a deleted category reads as uncategorized. Unlinked, the
// category snapshot saved with the note is returned as is.
type NoteRepository struct {
	mu         sync.Mutex
	notes      []core.Note
	categories *CategoryRepository
}

// NewRepositories creates a linked note and category pair holding the
// given records.
func NewRepositories(categories []core.Category, notes []core.Note) (*NoteRepository, *CategoryRepository) {
	c := NewCategoryRepository(categories...)
	n := NewNoteRepository(notes...)
	n.categories = c
	return n, c
}

// NewNoteRepository creates a repository holding the given notes.
// Later entries replace earlier ones with the same ID.
func NewNoteRepository(initial ...core.Note) *NoteRepository {
	r := &NoteRepository{}
	for _, n := range initial {
		r.upsert(n)
	}
	return r
}

// FetchNotes returns a snapshot sorted by modification time, newest first.
func (r *NoteRepository) FetchNotes(ctx context.Context) ([]core.Note, error) {
	r.mu.Lock()
	out := make([]core.Note, len(r.notes))
	for i, n := range r.notes {
		out[i] = cloneNote(n)
	}
	r.mu.Unlock()

	for i := range out {
		out[i] = r.resolveCategory(out[i])
	}
	core.SortNotesByModified(out)
	return out, nil
}

func (r *NoteRepository) FetchNote(ctx context.Context, id uuid.UUID) (core.Note, bool, error) {
	r.mu.Lock()
	i := r.indexOf(id)
	var n core.Note
	if i >= 0 {
		n = cloneNote(r.notes[i])
	}
	r.mu.Unlock()

	if i < 0 {
		return core.Note{}, false, nil
	}
	return r.resolveCategory(n), true, nil
}

// SaveNote appends a new note or replaces the one with the same ID in place.
func (r *NoteRepository) SaveNote(ctx context.Context, n core.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upsert(n)
	return nil
}

// UpdateNote replaces an existing note; unknown IDs are ignored.
func (r *NoteRepository) UpdateNote(ctx context.Context, n core.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.indexOf(n.ID); i >= 0 {
		r.notes[i] = cloneNote(n)
	}
	return nil
}

// DeleteNote removes every note with the given ID.
func (r *NoteRepository) DeleteNote(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.notes[:0]
	for _, n := range r.notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	clear(r.notes[len(kept):])
	r.notes = kept
	return nil
}

// Len reports the number of stored notes.
func (r *NoteRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notes)
}

// must hold r.mu
func (r *NoteRepository) upsert(n core.Note) {
	n = cloneNote(n)
	if i := r.indexOf(n.ID); i >= 0 {
		r.notes[i] = n
		return
	}
	r.notes = append(r.notes, n)
}

func (r *NoteRepository) indexOf(id uuid.UUID) int {
	for i := range r.notes {
		if r.notes[i].ID == id {
			return i
		}
	}
	return -1
}

// resolveCategory replaces the stored snapshot with the linked repository's
// current record. Must not be called with r.mu held.
func (r *NoteRepository) resolveCategory(n core.Note) core.Note {
	if r.categories == nil || n.Category == nil {
		return n
	}
	c, ok := r.categories.get(n.Category.ID)
	if !ok {
		return n.WithoutCategory()
	}
	return n.WithCategory(c)
}

// cloneNote detaches the category pointer so callers cannot alias stored state.
func cloneNote(n core.Note) core.Note {
	if n.Category != nil {
		c := *n.Category
		n.Category = &c
	}
	return n
}
