package lookup

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachePutGet(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), DefaultCacheFile)
	cache, err := OpenCache(path)
	require.NoError(t, err)

	_, ok, err := cache.Get(ctx, "119077")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Put(ctx, "119077", "OLD ADDRESS"))
	require.NoError(t, cache.Put(ctx, "119077", "NEW ADDRESS"))
	require.NoError(t, cache.Put(ctx, "238801", "ORCHARD"))

	addr, ok, err := cache.Get(ctx, "119077")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "NEW ADDRESS", addr)

	n, err := cache.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.NoError(t, cache.Close())

	// Entries survive reopening.
	reopened, err := OpenCache(path)
	require.NoError(t, err)
	defer reopened.Close()
	addr, ok, err = reopened.Get(ctx, "238801")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ORCHARD", addr)
}

func TestGenerateIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := generateID()
		assert.Len(t, id, 36)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
