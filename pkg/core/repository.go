package core

import (
	"context"

	"github.com/google/uuid"
)

// NoteRepository defines the contract for storing and retrieving notes.
// Adhering to this interface keeps the use cases independent of the
// underlying storage mechanism (memory, SQLite, PostgreSQL).
type NoteRepository interface {
	// FetchNotes returns every note, most recently modified first.
	FetchNotes(ctx context.Context) ([]Note, error)

	// FetchNote retrieves a note by ID. A missing note is reported by the
	// boolean, not by an error.
	FetchNote(ctx context.Context, id uuid.UUID) (Note, bool, error)

	// SaveNote persists a note. It creates if not exists, or replaces it if it does.
	SaveNote(ctx context.Context, n Note) error

	// UpdateNote replaces an existing note. Unknown IDs are ignored.
	UpdateNote(ctx context.Context, n Note) error

	// DeleteNote removes a note by ID.
	DeleteNote(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines the contract for category data access.
type CategoryRepository interface {
	// FetchCategories returns every category sorted by name, case-insensitive.
	FetchCategories(ctx context.Context) ([]Category, error)

	// FetchCategory retrieves a category by ID; the boolean is false when absent.
	FetchCategory(ctx context.Context, id uuid.UUID) (Category, bool, error)

	// AddCategory persists a category, replacing any record with the same ID.
	AddCategory(ctx context.Context, c Category) error

	// UpdateCategory replaces an existing category. Unknown IDs are ignored.
	UpdateCategory(ctx context.Context, c Category) error

	// DeleteCategory removes a category by ID.
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// PreferencesStore persists the user's settings.
type PreferencesStore interface {
	Load(ctx context.Context) (Preferences, error)
	Save(ctx context.Context, p Preferences) error
}
