package core

import (
	"time"

	"github.com/google/uuid"
)

// Note is the central entity of the domain.
// It is a user-authored text record with status flags and an optional,
// weakly referenced Category. Values are never mutated in place: every
// change goes through a With* builder that returns a new copy.
type Note struct {
	ID         uuid.UUID
	Title      string
	Content    string
	Category   *Category
	Pinned     bool
	Archived   bool
	Completed  bool
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// NewNote creates an uncategorized note with a fresh ID and "now" timestamps.
func NewNote(title, content string) Note {
	now := Now()
	return Note{
		ID:         uuid.New(),
		Title:      title,
		Content:    content,
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

// CategoryID returns the referenced category ID, or uuid.Nil when the note is uncategorized.
func (n Note) CategoryID() uuid.UUID {
	if n.Category == nil {
		return uuid.Nil
	}
	return n.Category.ID
}

// WithTitle returns a copy with the title replaced.
func (n Note) WithTitle(title string) Note {
	n.Title = title
	return n
}

// WithContent returns a copy with the content replaced.
func (n Note) WithContent(content string) Note {
	n.Content = content
	return n
}

// WithCategory returns a copy referencing c.
func (n Note) WithCategory(c Category) Note {
	n.Category = &c
	return n
}

// WithoutCategory returns an uncategorized copy.
func (n Note) WithoutCategory() Note {
	n.Category = nil
	return n
}

func (n Note) WithPinned(pinned bool) Note {
	n.Pinned = pinned
	return n
}

func (n Note) WithArchived(archived bool) Note {
	n.Archived = archived
	return n
}

func (n Note) WithCompleted(completed bool) Note {
	n.Completed = completed
	return n
}

// Touch returns a copy whose ModifiedAt is set to at.
func (n Note) Touch(at time.Time) Note {
	n.ModifiedAt = at
	return n
}

// Now returns the current UTC time truncated to millisecond precision,
// which is the resolution of the durable backend.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
