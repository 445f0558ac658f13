package archive_test

import (
	"github.com/aretw0/quicknotes/pkg/adapters/memory"
	"github.com/aretw0/quicknotes/pkg/core"
)

func newService() *core.Service {
	notes, categories := memory.NewRepositories(nil, nil)
	return core.NewService(notes, categories)
}
