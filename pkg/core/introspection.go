package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Backend        string `json:"backend"`
	NoteRepository string `json:"note_repository"`
	CategoryStore  string `json:"category_repository"`
	Seeded         bool   `json:"seeded"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return ServiceState{
		Backend:        s.backend,
		NoteRepository: componentType(s.notes),
		CategoryStore:  componentType(s.categories),
		Seeded:         s.seeded,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

func componentType(v any) string {
	if v == nil {
		return "none"
	}
	if comp, ok := v.(introspection.Component); ok {
		return comp.ComponentType()
	}
	return "repository"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
