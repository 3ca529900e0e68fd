package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetMissingKey(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), KeyBookings)

	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyRooms, []byte(`[{"id":"101"}]`)))

	got, err := s.Get(ctx, KeyRooms)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"101"}]`), got)
}

func TestMemoryStore_SetOverwrites(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyRooms, []byte(`old`)))
	require.NoError(t, s.Set(ctx, KeyRooms, []byte(`new`)))

	got, err := s.Get(ctx, KeyRooms)
	require.NoError(t, err)
	assert.Equal(t, []byte(`new`), got)
}

func TestMemoryStore_CopiesBytes(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	value := []byte(`original`)
	require.NoError(t, s.Set(ctx, KeyRooms, value))
	value[0] = 'X'

	got, err := s.Get(ctx, KeyRooms)
	require.NoError(t, err)
	assert.Equal(t, []byte(`original`), got)

	// Mutating the returned slice must not leak into the store either.
	got[0] = 'Y'
	again, err := s.Get(ctx, KeyRooms)
	require.NoError(t, err)
	assert.Equal(t, []byte(`original`), again)
}
