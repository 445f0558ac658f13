// Package archive converts notes to and from Markdown files with YAML
// frontmatter, for backups and bulk import.
package archive

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/quicknotes/pkg/core"
)

// Extension is the file extension of archived notes.
const Extension = ".md"

var ErrNoClosingDelimiter = errors.New("frontmatter started but no closing delimiter found")

type frontmatter struct {
	ID        string    `yaml:"id"`
	Title     string    `yaml:"title"`
	Category  string    `yaml:"category,omitempty"`
	Pinned    bool      `yaml:"pinned,omitempty"`
	Archived  bool      `yaml:"archived,omitempty"`
	Completed bool      `yaml:"completed,omitempty"`
	Created   time.Time `yaml:"created"`
	Modified  time.Time `yaml:"modified"`
}

// FileName returns the archive file name of n.
func FileName(n core.Note) string {
	return n.ID.String() + Extension
}

// Encode renders n as Markdown: a YAML frontmatter block followed by the content.
func Encode(n core.Note) ([]byte, error) {
	fm := frontmatter{
		ID:        n.ID.String(),
		Title:     n.Title,
		Pinned:    n.Pinned,
		Archived:  n.Archived,
		Completed: n.Completed,
		Created:   n.CreatedAt.UTC(),
		Modified:  n.ModifiedAt.UTC(),
	}
	if n.Category != nil {
		fm.Category = n.Category.Name
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	if err := writeFrontmatter(&buf, fm); err != nil {
		return nil, err
	}
	buf.WriteString("---\n")
	buf.WriteString(n.Content)
	return buf.Bytes(), nil
}

func writeFrontmatter(w io.Writer, fm frontmatter) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(fm); err != nil {
		return fmt.Errorf("encode frontmatter: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("flush frontmatter: %w", err)
	}
	return nil
}

// Decode parses a Markdown note. Files without frontmatter are accepted:
// the whole file becomes the content. fallbackTitle is used when the
// frontmatter has no title; a missing or malformed ID gets a fresh one.
func Decode(data []byte, fallbackTitle string) (core.ImportedNote, error) {
	var fm frontmatter
	content := string(data)

	if bytes.HasPrefix(data, []byte("---\n")) || bytes.HasPrefix(data, []byte("---\r\n")) {
		rest := strings.TrimPrefix(strings.TrimPrefix(content, "---\r\n"), "---\n")
		yamlPart, body, ok := cutDelimiter(rest)
		if !ok {
			return core.ImportedNote{}, ErrNoClosingDelimiter
		}
		if err := yaml.Unmarshal([]byte(yamlPart), &fm); err != nil {
			return core.ImportedNote{}, fmt.Errorf("failed to parse frontmatter: %w", err)
		}
		content = body
	}

	n := core.NewNote(fm.Title, content)
	if strings.TrimSpace(n.Title) == "" {
		n.Title = fallbackTitle
	}
	if id, err := uuid.Parse(fm.ID); err == nil {
		n.ID = id
	}
	if !fm.Created.IsZero() {
		n.CreatedAt = fm.Created.UTC().Truncate(time.Millisecond)
		n.ModifiedAt = n.CreatedAt
	}
	if !fm.Modified.IsZero() {
		n.ModifiedAt = fm.Modified.UTC().Truncate(time.Millisecond)
	}
	n = n.WithPinned(fm.Pinned).WithArchived(fm.Archived).WithCompleted(fm.Completed)

	return core.ImportedNote{Note: n, CategoryName: fm.Category}, nil
}

// cutDelimiter splits s at the first line consisting of "---".
func cutDelimiter(s string) (head, body string, ok bool) {
	if strings.HasPrefix(s, "---\n") || strings.HasPrefix(s, "---\r\n") || s == "---" {
		_, body, _ = strings.Cut(s, "\n")
		return "", body, true
	}
	for _, sep := range []string{"\n---\n", "\n---\r\n"} {
		if i := strings.Index(s, sep); i >= 0 {
			return s[:i+1], s[i+len(sep):], true
		}
	}
	if strings.HasSuffix(s, "\n---") {
		return s[:len(s)-3], "", true
	}
	return "", "", false
}
