package core

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ListFilter carries the note list parameters chosen in the UI.
type ListFilter struct {
	// CategoryID keeps only notes in this category; uuid.Nil disables the filter.
	CategoryID uuid.UUID
	// ShowArchivedAndCompleted keeps archived and completed notes in the result.
	ShowArchivedAndCompleted bool
	// Query is matched case-insensitively against title and content.
	Query string
	// Sort orders notes within the pinned and unpinned groups. Empty means newest first.
	Sort SortOrder
}

// FilterNotes derives the main note list from the full note set.
//
// Steps, in order:
//  1. Drop archived or completed notes unless ShowArchivedAndCompleted is set.
//  2. Keep notes of the selected category.
//  3. Keep notes whose title or content contains the trimmed query.
//  4. Pinned notes first, then f.Sort within each group.
//
// The input slice is left untouched.
func FilterNotes(notes []Note, f ListFilter) []Note {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if !f.ShowArchivedAndCompleted && (n.Archived || n.Completed) {
			continue
		}
		if f.CategoryID != uuid.Nil && n.CategoryID() != f.CategoryID {
			continue
		}
		if query != "" && !matches(n, query) {
			continue
		}
		out = append(out, n)
	}
	sortPinnedFirst(out, f.Sort)
	return out
}

// SearchNotes derives the search result list. Unlike FilterNotes it applies
// only the text query: archived, completed and every category stay visible.
func SearchNotes(notes []Note, query string) []Note {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if q != "" && !matches(n, q) {
			continue
		}
		out = append(out, n)
	}
	sortPinnedFirst(out, SortNewestFirst)
	return out
}

// lowerQuery must already be lower-cased and trimmed.
func matches(n Note, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(n.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(n.Content), lowerQuery)
}

func sortPinnedFirst(notes []Note, order SortOrder) {
	less := lessFor(order)
	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].Pinned != notes[j].Pinned {
			return notes[i].Pinned
		}
		return less(notes[i], notes[j])
	})
}

func lessFor(order SortOrder) func(a, b Note) bool {
	switch order {
	case SortOldestFirst:
		return func(a, b Note) bool { return a.ModifiedAt.Before(b.ModifiedAt) }
	case SortTitleAscending:
		return func(a, b Note) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) }
	case SortTitleDescending:
		return func(a, b Note) bool { return strings.ToLower(a.Title) > strings.ToLower(b.Title) }
	default:
		return func(a, b Note) bool { return a.ModifiedAt.After(b.ModifiedAt) }
	}
}

// SortNotesByModified orders notes most recently modified first, ties by ID.
// Backends use it to honour the FetchNotes ordering contract.
func SortNotesByModified(notes []Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		if !notes[i].ModifiedAt.Equal(notes[j].ModifiedAt) {
			return notes[i].ModifiedAt.After(notes[j].ModifiedAt)
		}
		return notes[i].ID.String() < notes[j].ID.String()
	})
}

// SortCategoriesByName orders categories by name, case-insensitive, ties by ID.
func SortCategoriesByName(categories []Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		a, b := strings.ToLower(categories[i].Name), strings.ToLower(categories[j].Name)
		if a != b {
			return a < b
		}
		return categories[i].ID.String() < categories[j].ID.String()
	})
}
