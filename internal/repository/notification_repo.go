package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/diicsu/room-booking-service/internal/models"
	"github.com/diicsu/room-booking-service/internal/storage"
)

type NotificationRepository interface {
	FindAll(ctx context.Context, status *models.NotificationStatus) ([]models.Notification, error)
	FindByBooking(ctx context.Context, bookingID string) ([]models.Notification, error)
	Create(ctx context.Context, notification *models.Notification) error
	UpdateStatus(ctx context.Context, id string, status models.NotificationStatus) (*models.Notification, error)
}

type notificationRepository struct {
	store storage.Store
	mu    sync.Mutex
}

func NewNotificationRepository(store storage.Store) NotificationRepository {
	return &notificationRepository{store: store}
}

func (r *notificationRepository) load(ctx context.Context) ([]models.Notification, error) {
	raw, err := r.store.Get(ctx, storage.KeyNotifications)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []models.Notification{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}
	var notifications []models.Notification
	if err := json.Unmarshal(raw, &notifications); err != nil {
		return nil, fmt.Errorf("decode notifications: %w", err)
	}
	return notifications, nil
}

func (r *notificationRepository) save(ctx context.Context, notifications []models.Notification) error {
	raw, err := json.Marshal(notifications)
	if err != nil {
		return fmt.Errorf("encode notifications: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyNotifications, raw); err != nil {
		return fmt.Errorf("save notifications: %w", err)
	}
	return nil
}

func (r *notificationRepository) FindAll(ctx context.Context, status *models.NotificationStatus) ([]models.Notification, error) {
	notifications, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return notifications, nil
	}
	filtered := make([]models.Notification, 0, len(notifications))
	for _, n := range notifications {
		if n.Status == *status {
			filtered = append(filtered, n)
		}
	}
	return filtered, nil
}

func (r *notificationRepository) FindByBooking(ctx context.Context, bookingID string) ([]models.Notification, error) {
	notifications, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Notification, 0, 2)
	for _, n := range notifications {
		if n.BookingID == bookingID {
			filtered = append(filtered, n)
		}
	}
	return filtered, nil
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	notifications, err := r.load(ctx)
	if err != nil {
		return err
	}
	notification.ID = uuid.Must(uuid.NewV7()).String()
	return r.save(ctx, append(notifications, *notification))
}

func (r *notificationRepository) UpdateStatus(ctx context.Context, id string, status models.NotificationStatus) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notifications, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range notifications {
		if notifications[i].ID != id {
			continue
		}
		notifications[i].Status = status
		if err := r.save(ctx, notifications); err != nil {
			return nil, err
		}
		updated := notifications[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}
