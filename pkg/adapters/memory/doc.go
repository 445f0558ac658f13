// Package memory provides in-memory implementations of the note, category
// and preferences stores. Data lives for the lifetime of the process; it is
// the backend for tests, previews and the CLI's ephemeral mode.
package memory
