package core

import (
	"context"
	"fmt"
	"strings"
)

// ImportedNote is a note read from an external archive. Its category is
// referenced by name because IDs do not survive across stores.
type ImportedNote struct {
	Note         Note
	CategoryName string
}

// ImportNotes saves notes read from an archive. Categories are matched by
// name, case-insensitive; missing ones are created with default icon and
// colour. Notes keep their IDs, so importing the same archive twice
// overwrites instead of duplicating. It returns the number of notes saved.
func (s *Service) ImportNotes(ctx context.Context, items []ImportedNote) (int, error) {
	categories, err := s.categories.FetchCategories(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch categories: %w", err)
	}
	byName := make(map[string]Category, len(categories))
	for _, c := range categories {
		byName[strings.ToLower(c.Name)] = c
	}

	saved := 0
	for _, item := range items {
		n := item.Note.WithoutCategory()
		if name := strings.TrimSpace(item.CategoryName); name != "" {
			c, ok := byName[strings.ToLower(name)]
			if !ok {
				c = NewCategory(name, "", "")
				if err := s.AddCategory(ctx, c); err != nil {
					return saved, err
				}
				byName[strings.ToLower(name)] = c
				s.logger.Info("category created during import", "name", name)
			}
			n = n.WithCategory(c)
		}
		if err := s.SaveNote(ctx, n); err != nil {
			return saved, err
		}
		saved++
	}
	return saved, nil
}
