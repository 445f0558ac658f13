package memory

import "github.com/aretw0/introspection"

// State exposes the repository size for observability.
type State struct {
	Items int `json:"items"`
}

func (r *NoteRepository) State() any     { return State{Items: r.Len()} }
func (r *CategoryRepository) State() any { return State{Items: r.Len()} }

func (r *NoteRepository) ComponentType() string     { return "memory-notes" }
func (r *CategoryRepository) ComponentType() string { return "memory-categories" }

var (
	_ introspection.Introspectable = (*NoteRepository)(nil)
	_ introspection.Component      = (*NoteRepository)(nil)
	_ introspection.Introspectable = (*CategoryRepository)(nil)
	_ introspection.Component      = (*CategoryRepository)(nil)
)
