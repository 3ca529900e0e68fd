package dto

import (
	"time"

	"github.com/diicsu/room-booking-service/internal/auth"
	"github.com/diicsu/room-booking-service/internal/models"
)

type LoginResponse struct {
	UserID string    `json:"user_id"`
	Role   auth.Role `json:"role"`
}

type RoomResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Capacity  int      `json:"capacity"`
	Equipment []string `json:"equipment"`
}

type BookingResponse struct {
	ID        string               `json:"id"`
	RoomID    string               `json:"room_id"`
	User      string               `json:"user"`
	StartTime time.Time            `json:"start_time"`
	Status    models.BookingStatus `json:"status"`
}

type NotificationResponse struct {
	ID        string                     `json:"id"`
	BookingID string                     `json:"booking_id"`
	Channel   models.NotificationChannel `json:"channel"`
	Status    models.NotificationStatus  `json:"status"`
	Message   string                     `json:"message"`
	CreatedAt time.Time                  `json:"created_at"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToRoomResponse(r *models.Room) RoomResponse {
	return RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		Equipment: r.Equipment,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		RoomID:    b.RoomID,
		User:      b.User,
		StartTime: b.StartTime,
		Status:    b.Status,
	}
}

func ToNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		BookingID: n.BookingID,
		Channel:   n.Channel,
		Status:    n.Status,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
	}
}
