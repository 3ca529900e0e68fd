package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/diicsu/room-booking-service/internal/models"
	"github.com/diicsu/room-booking-service/internal/storage"
)

type BookingRepository interface {
	FindAll(ctx context.Context, status *models.BookingStatus) ([]models.Booking, error)
	FindByID(ctx context.Context, id string) (*models.Booking, error)
	FindByRoomAndDay(ctx context.Context, roomID string, day time.Time) ([]models.Booking, error)
	FindByUser(ctx context.Context, user string, status *models.BookingStatus) ([]models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type bookingRepository struct {
	store storage.Store
	mu    sync.Mutex
}

func NewBookingRepository(store storage.Store) BookingRepository {
	return &bookingRepository{store: store}
}

func (r *bookingRepository) load(ctx context.Context) ([]models.Booking, error) {
	raw, err := r.store.Get(ctx, storage.KeyBookings)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []models.Booking{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	var bookings []models.Booking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) save(ctx context.Context, bookings []models.Booking) error {
	raw, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("encode bookings: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyBookings, raw); err != nil {
		return fmt.Errorf("save bookings: %w", err)
	}
	return nil
}

func (r *bookingRepository) FindAll(ctx context.Context, status *models.BookingStatus) ([]models.Booking, error) {
	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return bookings, nil
	}
	filtered := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == *status {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *bookingRepository) FindByRoomAndDay(ctx context.Context, roomID string, day time.Time) ([]models.Booking, error) {
	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.RoomID == roomID && b.OnDay(day) {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

func (r *bookingRepository) FindByUser(ctx context.Context, user string, status *models.BookingStatus) ([]models.Booking, error) {
	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.User != user {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered, nil
}

// Create assigns a fresh id and appends the booking to the collection.
// Ids are UUIDv7, so they sort by creation time.
func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load(ctx)
	if err != nil {
		return err
	}
	booking.ID = uuid.Must(uuid.NewV7()).String()
	return r.save(ctx, append(bookings, *booking))
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID != id {
			continue
		}
		bookings[i].Status = status
		if err := r.save(ctx, bookings); err != nil {
			return nil, err
		}
		updated := bookings[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}

// Delete removes the booking with the given id and reports whether a
// removal happened. The collection is only rewritten on an actual change.
func (r *bookingRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	kept := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(bookings) {
		return false, nil
	}
	if err := r.save(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}
