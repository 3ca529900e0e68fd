package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/diicsu/room-booking-service/internal/models"
	"github.com/diicsu/room-booking-service/internal/storage"
)

// defaultRooms is written on first use when no catalog exists yet.
var defaultRooms = []models.Room{
	{ID: "101", Name: "A101", Capacity: 50, Equipment: []string{"投影仪", "白板"}},
	{ID: "102", Name: "B102", Capacity: 30, Equipment: []string{"白板"}},
	{ID: "103", Name: "C203", Capacity: 20, Equipment: []string{"无"}},
}

type RoomRepository interface {
	List(ctx context.Context) ([]models.Room, error)
	FindByID(ctx context.Context, id string) (*models.Room, error)
}

type roomRepository struct {
	store storage.Store
	mu    sync.Mutex
}

func NewRoomRepository(store storage.Store) RoomRepository {
	return &roomRepository{store: store}
}

// List returns the persisted catalog, seeding the defaults when the
// collection is absent or empty. Seeding happens at most once: after the
// first call the stored catalog is returned as-is.
func (r *roomRepository) List(ctx context.Context) ([]models.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := r.store.Get(ctx, storage.KeyRooms)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return r.seed(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}

	var rooms []models.Room
	if err := json.Unmarshal(raw, &rooms); err != nil {
		return nil, fmt.Errorf("decode rooms: %w", err)
	}
	if len(rooms) == 0 {
		return r.seed(ctx)
	}
	return rooms, nil
}

func (r *roomRepository) seed(ctx context.Context) ([]models.Room, error) {
	raw, err := json.Marshal(defaultRooms)
	if err != nil {
		return nil, fmt.Errorf("encode default rooms: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyRooms, raw); err != nil {
		return nil, fmt.Errorf("seed rooms: %w", err)
	}
	rooms := make([]models.Room, len(defaultRooms))
	copy(rooms, defaultRooms)
	return rooms, nil
}

func (r *roomRepository) FindByID(ctx context.Context, id string) (*models.Room, error) {
	rooms, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rooms {
		if rooms[i].ID == id {
			return &rooms[i], nil
		}
	}
	return nil, ErrNotFound
}
