package models

import "time"

type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "email"
	ChannelSMS   NotificationChannel = "sms"
)

type NotificationStatus string

const (
	NotificationPending NotificationStatus = "pending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
)

// DeliveryOutcome reports whether s is a state a dispatcher may assign.
func (s NotificationStatus) DeliveryOutcome() bool {
	return s == NotificationSent || s == NotificationFailed
}

// Notification is a queued message about a booking event. Records start
// out pending and are marked sent or failed by whoever delivers them.
type Notification struct {
	ID        string              `json:"id"`
	BookingID string              `json:"bookingId"`
	Channel   NotificationChannel `json:"channel"`
	Status    NotificationStatus  `json:"status"`
	Message   string              `json:"message"`
	CreatedAt time.Time           `json:"createdAt"`
}
