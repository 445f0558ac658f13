// Package quicknotes is the Composition Root for the QuickNotes application.
//
// It connects the note-taking use cases (Domain Layer) with the storage
// backends (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Notes are short titled texts that can be pinned, archived or completed and
// optionally filed under a coloured Category. Deleting a category never
// deletes notes: they are unassigned first.
//
// Backends:
//
//   - memory: process-local, pre-filled with sample notes. Selected by an empty URI.
//   - sqlite: a single database file (modernc.org/sqlite, no cgo).
//   - postgres: any postgres:// URL (pgx).
//
// Usage:
//
//	svc, err := quicknotes.New(ctx, "notes.db",
//		quicknotes.WithLogger(logger),
//	)
//
//	note, err := svc.CreateNote(ctx, core.NoteDraft{Title: "Groceries"})
package quicknotes
