package archive

import (
	"context"
	"path/filepath"

	"github.com/aretw0/quicknotes/pkg/adapters/fs"
)

// Sink receives archived files.
type Sink interface {
	Put(ctx context.Context, name string, data []byte) error
}

// DirSink writes each file into a local directory.
type DirSink struct {
	Dir string
}

// Put writes data atomically to Dir/name.
func (s DirSink) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fs.WriteFileAtomic(filepath.Join(s.Dir, name), data, 0o644)
}
