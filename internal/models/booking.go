package models

import "time"

type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusApproved BookingStatus = "approved"
	StatusRejected BookingStatus = "rejected"
)

// ReviewOutcome reports whether s is a status an admin review may assign.
func (s BookingStatus) ReviewOutcome() bool {
	return s == StatusApproved || s == StatusRejected
}

// Terminal reports whether s is an absorbing state: once a booking is
// approved or rejected it never changes status again.
func (s BookingStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Booking is a request to reserve a room at a start time. The JSON tags
// define the persisted encoding inside the "bookings" collection.
type Booking struct {
	ID        string        `json:"id"`
	RoomID    string        `json:"roomId"`
	User      string        `json:"user"`
	StartTime time.Time     `json:"startTime"`
	Status    BookingStatus `json:"status"`
}

// CanTransitionTo reports whether the booking may move to target. Only a
// pending booking transitions, and only to a review outcome.
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	return b.Status == StatusPending && target.ReviewOutcome()
}

// OnDay reports whether the booking starts on the given calendar day (UTC).
func (b *Booking) OnDay(day time.Time) bool {
	y1, m1, d1 := b.StartTime.UTC().Date()
	y2, m2, d2 := day.UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
