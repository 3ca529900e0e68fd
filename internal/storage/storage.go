// Package storage defines the key/value persistence port the
// repositories write through, plus its backends. Each key holds one
// JSON-encoded collection, mirroring the browser-local-storage layout
// this service replaced.
package storage

import (
	"context"
	"errors"
)

// Collection keys.
const (
	KeyRooms         = "rooms"
	KeyBookings      = "bookings"
	KeyNotifications = "notifications"
)

// ErrKeyNotFound is returned by Get when the key has never been written.
var ErrKeyNotFound = errors.New("storage: key not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
