package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diicsu/room-booking-service/internal/models"
	"github.com/diicsu/room-booking-service/internal/repository"
)

var (
	ErrNotificationNotFound      = errors.New("notification not found")
	ErrInvalidNotificationStatus = errors.New("status must be sent or failed")
)

type NotificationService interface {
	RecordBookingEvent(ctx context.Context, event string, booking *models.Booking) error
	ListNotifications(ctx context.Context, status *models.NotificationStatus) ([]models.Notification, error)
	ListForBooking(ctx context.Context, bookingID string) ([]models.Notification, error)
	MarkDelivery(ctx context.Context, id string, status models.NotificationStatus) (*models.Notification, error)
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

// RecordBookingEvent queues one email and one sms notification about a
// booking event. Dispatch is someone else's job; records stay pending
// until a dispatcher marks them.
func (s *notificationService) RecordBookingEvent(ctx context.Context, event string, booking *models.Booking) error {
	start := booking.StartTime.Format(time.RFC3339)
	email := &models.Notification{
		BookingID: booking.ID,
		Channel:   models.ChannelEmail,
		Status:    models.NotificationPending,
		Message: fmt.Sprintf("Your booking for room %s starting %s has been %s.",
			booking.RoomID, start, event),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, email); err != nil {
		return fmt.Errorf("create email notification: %w", err)
	}

	sms := &models.Notification{
		BookingID: booking.ID,
		Channel:   models.ChannelSMS,
		Status:    models.NotificationPending,
		Message:   fmt.Sprintf("Room %s booking %s.", booking.RoomID, event),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, sms); err != nil {
		return fmt.Errorf("create sms notification: %w", err)
	}
	return nil
}

func (s *notificationService) ListNotifications(ctx context.Context, status *models.NotificationStatus) ([]models.Notification, error) {
	return s.repo.FindAll(ctx, status)
}

func (s *notificationService) ListForBooking(ctx context.Context, bookingID string) ([]models.Notification, error) {
	return s.repo.FindByBooking(ctx, bookingID)
}

func (s *notificationService) MarkDelivery(ctx context.Context, id string, status models.NotificationStatus) (*models.Notification, error) {
	if !status.DeliveryOutcome() {
		return nil, ErrInvalidNotificationStatus
	}
	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotificationNotFound
	}
	return updated, err
}
