package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aretw0/quicknotes/pkg/core"
)

// resolveNote accepts a full note ID or a unique prefix of one.
func resolveNote(ctx context.Context, svc *core.Service, arg string) (core.Note, error) {
	if id, err := uuid.Parse(arg); err == nil {
		n, ok, err := svc.GetNote(ctx, id)
		if err != nil {
			return core.Note{}, err
		}
		if !ok {
			return core.Note{}, fmt.Errorf("%w: %s", core.ErrNoteNotFound, arg)
		}
		return n, nil
	}

	notes, err := svc.ListNotes(ctx)
	if err != nil {
		return core.Note{}, err
	}
	var matches []core.Note
	prefix := strings.ToLower(arg)
	for _, n := range notes {
		if strings.HasPrefix(n.ID.String(), prefix) {
			matches = append(matches, n)
		}
	}
	switch len(matches) {
	case 0:
		return core.Note{}, fmt.Errorf("%w: %s", core.ErrNoteNotFound, arg)
	case 1:
		return matches[0], nil
	default:
		return core.Note{}, usageErrorf("id", "note id %q is ambiguous (%d matches)", arg, len(matches))
	}
}

// resolveCategory accepts a full ID, a unique ID prefix or a name (case-insensitive).
func resolveCategory(ctx context.Context, svc *core.Service, arg string) (core.Category, error) {
	categories, err := svc.ListCategories(ctx)
	if err != nil {
		return core.Category{}, err
	}

	for _, c := range categories {
		if strings.EqualFold(c.Name, arg) || c.ID.String() == arg {
			return c, nil
		}
	}
	var matches []core.Category
	prefix := strings.ToLower(arg)
	for _, c := range categories {
		if strings.HasPrefix(c.ID.String(), prefix) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return core.Category{}, fmt.Errorf("%w: %s", core.ErrCategoryNotFound, arg)
	case 1:
		return matches[0], nil
	default:
		return core.Category{}, usageErrorf("category", "category %q is ambiguous (%d matches)", arg, len(matches))
	}
}
