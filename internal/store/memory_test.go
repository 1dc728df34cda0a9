package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKeyValueStore_GetSetRemove(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()

	_, err := kv.Get(ctx, KeyCurrentSession)
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Set(ctx, KeyCurrentSession, `{"username":"testuser"}`))
	got, err := kv.Get(ctx, KeyCurrentSession)
	require.NoError(t, err)
	assert.Equal(t, `{"username":"testuser"}`, got)

	require.NoError(t, kv.Set(ctx, KeyCurrentSession, "replaced"))
	got, err = kv.Get(ctx, KeyCurrentSession)
	require.NoError(t, err)
	assert.Equal(t, "replaced", got)

	require.NoError(t, kv.Remove(ctx, KeyCurrentSession))
	_, err = kv.Get(ctx, KeyCurrentSession)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// removing twice is fine
	assert.NoError(t, kv.Remove(ctx, KeyCurrentSession))
}

func TestMemoryKeyValueStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i)
			assert.NoError(t, kv.Set(ctx, key, "v"))
			_, err := kv.Get(ctx, key)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		_, err := kv.Get(ctx, fmt.Sprintf("k%d", i))
		assert.NoError(t, err)
	}
}
