package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diicsu/room-booking-service/internal/auth"
	"github.com/diicsu/room-booking-service/internal/models"
	"github.com/diicsu/room-booking-service/internal/repository"
	"github.com/diicsu/room-booking-service/pkg/rabbitmq"
)

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrMissingUser      = errors.New("user is required")
	ErrMissingStartTime = errors.New("start time is required")
	ErrInvalidStatus    = errors.New("status must be approved or rejected")
	ErrNotPending       = errors.New("booking has already been reviewed")
	ErrNotAllowed       = errors.New("role may not review bookings")
)

type BookingService interface {
	CreateBooking(ctx context.Context, roomID, user string, startTime time.Time) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, status *models.BookingStatus) ([]models.Booking, error)
	ListForRoomAndDay(ctx context.Context, roomID string, day time.Time) ([]models.Booking, error)
	ListForUser(ctx context.Context, user string, status *models.BookingStatus) ([]models.Booking, error)
	ReviewBooking(ctx context.Context, id string, status models.BookingStatus, actor auth.Role) (*models.Booking, error)
	CancelBooking(ctx context.Context, id string) (bool, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	roomRepo    repository.RoomRepository
	authorizer  auth.Authorizer
	publisher   *rabbitmq.Publisher
}

func NewBookingService(bookingRepo repository.BookingRepository, roomRepo repository.RoomRepository, authorizer auth.Authorizer, publisher *rabbitmq.Publisher) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		authorizer:  authorizer,
		publisher:   publisher,
	}
}

// CreateBooking records a new pending request. The room must resolve;
// a booking never references a room that is not in the catalog.
func (s *bookingService) CreateBooking(ctx context.Context, roomID, user string, startTime time.Time) (*models.Booking, error) {
	if user == "" {
		return nil, ErrMissingUser
	}
	if startTime.IsZero() {
		return nil, ErrMissingStartTime
	}

	if _, err := s.roomRepo.FindByID(ctx, roomID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("resolve room: %w", err)
	}

	booking := &models.Booking{
		RoomID:    roomID,
		User:      user,
		StartTime: startTime.UTC(),
		Status:    models.StatusPending,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.publish("booking.created", booking)
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	return booking, err
}

func (s *bookingService) ListBookings(ctx context.Context, status *models.BookingStatus) ([]models.Booking, error) {
	return s.bookingRepo.FindAll(ctx, status)
}

func (s *bookingService) ListForRoomAndDay(ctx context.Context, roomID string, day time.Time) ([]models.Booking, error) {
	return s.bookingRepo.FindByRoomAndDay(ctx, roomID, day)
}

func (s *bookingService) ListForUser(ctx context.Context, user string, status *models.BookingStatus) ([]models.Booking, error) {
	return s.bookingRepo.FindByUser(ctx, user, status)
}

// ReviewBooking moves a pending booking to approved or rejected. Both
// outcomes are terminal; a booking that has left pending cannot be
// reviewed again.
func (s *bookingService) ReviewBooking(ctx context.Context, id string, status models.BookingStatus, actor auth.Role) (*models.Booking, error) {
	if !status.ReviewOutcome() {
		return nil, ErrInvalidStatus
	}
	if !s.authorizer.CanReview(actor) {
		return nil, ErrNotAllowed
	}

	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if !booking.CanTransitionTo(status) {
		return nil, ErrNotPending
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	s.publish("booking."+string(status), updated)
	return updated, nil
}

// CancelBooking removes the record outright, any status. There is no
// audit trail for cancellations.
func (s *bookingService) CancelBooking(ctx context.Context, id string) (bool, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find booking: %w", err)
	}

	removed, err := s.bookingRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete booking: %w", err)
	}
	if removed {
		s.publish("booking.cancelled", booking)
	}
	return removed, nil
}

// publish is best-effort: a nil publisher means messaging is disabled,
// and a broker failure never fails the booking operation itself.
func (s *bookingService) publish(routingKey string, booking *models.Booking) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.Publish(routingKey, booking)
}
