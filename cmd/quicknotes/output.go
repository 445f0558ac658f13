package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aretw0/quicknotes/pkg/core"
)

// noteJSON is the --json shape of a note.
type noteJSON struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Content    string        `json:"content"`
	Category   *categoryJSON `json:"category,omitempty"`
	Pinned     bool          `json:"pinned"`
	Archived   bool          `json:"archived"`
	Completed  bool          `json:"completed"`
	CreatedAt  time.Time     `json:"created_at"`
	ModifiedAt time.Time     `json:"modified_at"`
}

type categoryJSON struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	ColorHex string `json:"color_hex"`
}

func toNoteJSON(n core.Note) noteJSON {
	out := noteJSON{
		ID:         n.ID.String(),
		Title:      n.Title,
		Content:    n.Content,
		Pinned:     n.Pinned,
		Archived:   n.Archived,
		Completed:  n.Completed,
		CreatedAt:  n.CreatedAt,
		ModifiedAt: n.ModifiedAt,
	}
	if n.Category != nil {
		c := toCategoryJSON(*n.Category)
		out.Category = &c
	}
	return out
}

func toCategoryJSON(c core.Category) categoryJSON {
	return categoryJSON{ID: c.ID.String(), Name: c.Name, Icon: c.Icon, ColorHex: c.ColorHex}
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func writeNotes(w io.Writer, notes []core.Note, asJSON bool) error {
	if asJSON {
		out := make([]noteJSON, len(notes))
		for i, n := range notes {
			out[i] = toNoteJSON(n)
		}
		return writeJSON(w, out)
	}
	for _, n := range notes {
		fmt.Fprintln(w, noteLine(n))
	}
	return nil
}

// noteLine renders "<short id> <flags> <title> (<category>)".
func noteLine(n core.Note) string {
	var b strings.Builder
	b.WriteString(shortID(n.ID.String()))
	b.WriteString(" ")
	b.WriteString(flags(n))
	b.WriteString(" ")
	b.WriteString(n.Title)
	if n.Category != nil {
		fmt.Fprintf(&b, " (%s)", n.Category.Name)
	}
	return b.String()
}

func flags(n core.Note) string {
	f := []byte("---")
	if n.Pinned {
		f[0] = 'P'
	}
	if n.Archived {
		f[1] = 'A'
	}
	if n.Completed {
		f[2] = 'C'
	}
	return string(f)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
