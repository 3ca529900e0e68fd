package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_GetMissingKey(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Get(context.Background(), KeyBookings)

	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFileStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyBookings, []byte(`[]`)))

	got, err := s.Get(ctx, KeyBookings)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, KeyRooms, []byte(`[{"id":"101"}]`)))

	second, err := NewFileStore(dir)
	require.NoError(t, err)
	got, err := second.Get(ctx, KeyRooms)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"101"}]`), got)
}

func TestFileStore_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyRooms, []byte(`a`)))
	require.NoError(t, s.Set(ctx, KeyRooms, []byte(`b`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "rooms.json", filepath.Base(entries[0].Name()))
}
