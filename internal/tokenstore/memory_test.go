package tokenstore

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorePutGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	userID := uuid.New()

	require.NoError(t, store.Put(ctx, "tok-a", userID, time.Minute))

	got, ok, err := store.Get(ctx, "tok-a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, userID, got)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	got, ok, err := store.Get(ctx, "never-stored")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, got)
}

func TestMemoryStoreExpiryOnRead(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	userID := uuid.New()

	current := time.Now()
	store.now = func() time.Time { return current }

	require.NoError(t, store.Put(ctx, "tok-b", userID, time.Minute))

	current = current.Add(time.Minute + time.Second)

	_, ok, err := store.Get(ctx, "tok-b")
	require.NoError(t, err)
	assert.False(t, ok)

	// The expired entry must be gone even if the clock moves back.
	current = current.Add(-10 * time.Minute)
	_, ok, err = store.Get(ctx, "tok-b")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	userID := uuid.New()

	require.NoError(t, store.Put(ctx, "tok-c", userID, time.Minute))
	require.NoError(t, store.Delete(ctx, "tok-c"))

	_, ok, err := store.Get(ctx, "tok-c")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Delete(ctx, "tok-c"))
}

func TestMemoryStoreOverwriteRefreshesTTL(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	first := uuid.New()
	second := uuid.New()

	current := time.Now()
	store.now = func() time.Time { return current }

	require.NoError(t, store.Put(ctx, "tok-d", first, time.Minute))
	current = current.Add(50 * time.Second)
	require.NoError(t, store.Put(ctx, "tok-d", second, time.Minute))
	current = current.Add(50 * time.Second)

	got, ok, err := store.Get(ctx, "tok-d")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, second, got)
}
