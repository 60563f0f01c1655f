package modelstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	defer s.Close(ctx)

	require.NoError(t, s.Save(ctx, "weather", []byte(`{"kind":"c45"}`)))
	got, err := s.Load(ctx, "weather")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"kind":"c45"}`), got)
}

func TestMemoryStoreOverwrites(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	require.NoError(t, s.Save(ctx, "weather", []byte("v1")))
	require.NoError(t, s.Save(ctx, "weather", []byte("v2")))
	got, err := s.Load(ctx, "weather")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestMemoryStoreLoadMissing(t *testing.T) {
	s := NewMemory()
	_, err := s.Load(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	require.NoError(t, s.Save(ctx, "weather", []byte("v1")))
	require.NoError(t, s.Delete(ctx, "weather"))
	_, err := s.Load(ctx, "weather")
	assert.Error(t, err)

	// deleting a nonexistent model is not an error
	assert.NoError(t, s.Delete(ctx, "weather"))
}

func TestMemoryStoreCopiesBlob(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	blob := []byte("original")
	require.NoError(t, s.Save(ctx, "weather", blob))
	blob[0] = 'X'
	got, err := s.Load(ctx, "weather")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)
}

func TestMemoryStoreCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewMemory()
	assert.Error(t, s.Save(ctx, "weather", []byte("v1")))
	_, err := s.Load(ctx, "weather")
	assert.Error(t, err)
}
