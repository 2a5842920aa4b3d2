package repomanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SqliteMigrates(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, "sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	for _, table := range []string{"users", "keys", "records"} {
		var n int
		err := store.DB.QueryRow(`SELECT count(*) FROM ` + table).Scan(&n)
		require.NoError(t, err, "table %s should exist after migration", table)
		assert.Equal(t, 0, n)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "oracle", "dsn")
	assert.Error(t, err)
}
