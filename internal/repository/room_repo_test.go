package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diicsu/room-booking-service/internal/models"
	"github.com/diicsu/room-booking-service/internal/storage"
)

func TestRoomList_SeedsDefaultCatalog(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewRoomRepository(store)
	ctx := context.Background()

	rooms, err := repo.List(ctx)
	require.NoError(t, err)

	require.Len(t, rooms, 3)
	assert.Equal(t, "101", rooms[0].ID)
	assert.Equal(t, "A101", rooms[0].Name)
	assert.Equal(t, 50, rooms[0].Capacity)
	assert.Equal(t, "102", rooms[1].ID)
	assert.Equal(t, "103", rooms[2].ID)

	// The seed must be persisted, not just returned.
	raw, err := store.Get(ctx, storage.KeyRooms)
	require.NoError(t, err)
	var persisted []models.Room
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Equal(t, rooms, persisted)
}

func TestRoomList_SeedIsIdempotent(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewRoomRepository(store)
	ctx := context.Background()

	first, err := repo.List(ctx)
	require.NoError(t, err)
	rawAfterSeed, err := store.Get(ctx, storage.KeyRooms)
	require.NoError(t, err)

	second, err := repo.List(ctx)
	require.NoError(t, err)
	rawAfterSecond, err := store.Get(ctx, storage.KeyRooms)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, rawAfterSeed, rawAfterSecond)
}

func TestRoomList_DoesNotOverwriteExistingCatalog(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	custom := []models.Room{{ID: "201", Name: "D201", Capacity: 10, Equipment: []string{"白板"}}}
	raw, err := json.Marshal(custom)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, storage.KeyRooms, raw))

	rooms, err := NewRoomRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, custom, rooms)
}

func TestRoomFindByID(t *testing.T) {
	repo := NewRoomRepository(storage.NewMemoryStore())
	ctx := context.Background()

	room, err := repo.FindByID(ctx, "102")
	require.NoError(t, err)
	assert.Equal(t, "B102", room.Name)
	assert.Equal(t, 30, room.Capacity)

	_, err = repo.FindByID(ctx, "999")
	assert.ErrorIs(t, err, ErrNotFound)
}
