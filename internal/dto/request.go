package dto

import "time"

type LoginRequest struct {
	UserID string `json:"user_id"`
}

type CreateBookingRequest struct {
	User      string    `json:"user"`
	StartTime time.Time `json:"start_time"`
}

type ReviewBookingRequest struct {
	Status string `json:"status"`
}

type MarkNotificationRequest struct {
	Status string `json:"status"`
}
