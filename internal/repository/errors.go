// Package repository implements data access for users, events and
// bookings on top of database/sql. Sentinel errors defined here let
// handlers distinguish failure scenarios without inspecting driver
// errors: ErrForbidden signals an ownership violation, the NotFound
// values signal a missing row, and ErrEmailExists signals a unique
// key collision on users.email.
package repository

import "errors"

// ErrEmailExists is returned when a signup collides with an existing
// user on the normalized email. Handlers translate it to HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrEventNotFound is returned when an event id does not resolve.
var ErrEventNotFound = errors.New("event not found")

// ErrBookingNotFound is returned when a booking id does not resolve,
// including the case where a concurrent cancellation already removed
// the row.
var ErrBookingNotFound = errors.New("booking not found")

// ErrForbidden is returned when the caller attempts an operation on a
// booking owned by someone else. Handlers translate it to HTTP 403.
var ErrForbidden = errors.New("forbidden")
