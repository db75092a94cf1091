package model

import "time"

// Booking links a user to an event they intend to attend. A booking
// always references a live user and event at creation time; cancelling
// removes the row entirely instead of flagging it inactive. The same
// user may book the same event more than once.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – the booker (bookings.user_id).
//  EventID   – the booked event (bookings.event_id).
//  CreatedAt – creation timestamp.
type Booking struct {
	ID        uint64    // bookings.id
	UserID    uint64    // bookings.user_id
	EventID   uint64    // bookings.event_id
	CreatedAt time.Time // bookings.created_at
}
