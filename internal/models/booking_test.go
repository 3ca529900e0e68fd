package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		name   string
		from   BookingStatus
		to     BookingStatus
		expect bool
	}{
		{"pending to approved", StatusPending, StatusApproved, true},
		{"pending to rejected", StatusPending, StatusRejected, true},
		{"pending to pending", StatusPending, StatusPending, false},
		{"approved is terminal", StatusApproved, StatusRejected, false},
		{"rejected is terminal", StatusRejected, StatusApproved, false},
		{"no way back to pending", StatusApproved, StatusPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := Booking{Status: tc.from}
			assert.Equal(t, tc.expect, b.CanTransitionTo(tc.to))
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
}

func TestOnDay(t *testing.T) {
	b := Booking{StartTime: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}

	assert.True(t, b.OnDay(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, b.OnDay(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)))
}
