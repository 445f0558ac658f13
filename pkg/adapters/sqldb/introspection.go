package sqldb

import "github.com/aretw0/introspection"

// StoreState exposes connection pool statistics.
type StoreState struct {
	Driver          string `json:"driver"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
}

func (s *Store) State() any {
	stats := s.db.Stats()
	return StoreState{
		Driver:          s.dialect.name,
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
	}
}

func (s *Store) ComponentType() string { return "sql-store" }

func (r *NoteRepository) ComponentType() string     { return r.store.dialect.name + "-notes" }
func (r *CategoryRepository) ComponentType() string { return r.store.dialect.name + "-categories" }

var (
	_ introspection.Introspectable = (*Store)(nil)
	_ introspection.Component      = (*Store)(nil)
	_ introspection.Component      = (*NoteRepository)(nil)
	_ introspection.Component      = (*CategoryRepository)(nil)
)
