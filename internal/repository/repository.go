// Package repository maps the domain collections onto the storage port.
// Every mutation is a read-modify-write of the whole collection; each
// repository serializes its own writes with a mutex, so concurrent
// handlers in one process cannot lose updates to each other. Writers in
// other processes still race last-writer-wins.
package repository

import "errors"

// ErrNotFound is returned when an id does not resolve to a record.
var ErrNotFound = errors.New("record not found")
