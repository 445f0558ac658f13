package archive

import (
	"context"
	"fmt"
	iofs "io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/quicknotes/pkg/core"
)

// Export writes every note to sink as <id>.md and returns how many were written.
// It stops at the first failure.
func Export(ctx context.Context, notes []core.Note, sink Sink) (int, error) {
	for i, n := range notes {
		data, err := Encode(n)
		if err != nil {
			return i, fmt.Errorf("export %s: %w", n.ID, err)
		}
		if err := sink.Put(ctx, FileName(n), data); err != nil {
			return i, fmt.Errorf("export %s: %w", n.ID, err)
		}
	}
	return len(notes), nil
}

// Import reads every Markdown file in fsys matching the doublestar pattern
// (e.g. "**/*.md"), in lexical order. Files without a title take their
// base name.
func Import(ctx context.Context, fsys iofs.FS, pattern string) ([]core.ImportedNote, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	sort.Strings(matches)

	out := make([]core.ImportedNote, 0, len(matches))
	for _, name := range matches {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		data, err := iofs.ReadFile(fsys, name)
		if err != nil {
			return out, fmt.Errorf("read %s: %w", name, err)
		}
		title := strings.TrimSuffix(path.Base(name), path.Ext(name))
		item, err := Decode(data, title)
		if err != nil {
			return out, fmt.Errorf("decode %s: %w", name, err)
		}
		out = append(out, item)
	}
	return out, nil
}
