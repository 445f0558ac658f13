package sqldb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebind(t *testing.T) {
	q := `UPDATE notes SET title = ?, content = ? WHERE id = ?`
	assert.Equal(t, q, sqliteDialect.rebind(q))
	assert.Equal(t, `UPDATE notes SET title = $1, content = $2 WHERE id = $3`, postgresDialect.rebind(q))
}
