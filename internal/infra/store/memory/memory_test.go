package memory

import (
	"context"
	"testing"

	"washline/internal/domain/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetMissingKey(t *testing.T) {
	s := New()

	_, err := s.Get(context.Background(), "user:absent")
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
}

func TestStore_SetOverwrites(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "user:1", map[string]string{"name": "a"}))
	require.NoError(t, s.Set(ctx, "user:1", map[string]string{"name": "b"}))

	raw, err := s.Get(ctx, "user:1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"b"}`, string(raw))
}

func TestStore_GetByPrefix_SortedAndIsolated(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "order:vendor:v1:20-a", "20-a"))
	require.NoError(t, s.Set(ctx, "order:vendor:v1:10-a", "10-a"))
	require.NoError(t, s.Set(ctx, "order:vendor:v2:30-b", "30-b"))
	require.NoError(t, s.Set(ctx, "order:student:s1:10-a", "10-a"))

	entries, err := s.GetByPrefix(ctx, "order:vendor:v1:")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "order:vendor:v1:10-a", entries[0].Key)
	assert.Equal(t, "order:vendor:v1:20-a", entries[1].Key)
}

func TestStore_GetByPrefix_Empty(t *testing.T) {
	s := New()

	entries, err := s.GetByPrefix(context.Background(), "vendor:list:")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
