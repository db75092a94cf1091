package model

import "time"

// Event is a bookable event created by a user. The creator reference
// is exclusive and never changes after creation. Events are read by
// anyone; creating one requires authentication.
//
// Fields:
//  ID          – primary key identifier.
//  Title       – short display title.
//  Description – free-form description text.
//  Price       – non-negative ticket price, stored as DECIMAL(10,2).
//  Date        – when the event takes place (UTC).
//  CreatorID   – user who created the event (events.creator_id).
//  CreatedAt   – creation timestamp.
type Event struct {
	ID          uint64    // events.id
	Title       string    // events.title
	Description string    // events.description
	Price       float64   // events.price
	Date        time.Time // events.date
	CreatorID   uint64    // events.creator_id
	CreatedAt   time.Time // events.created_at
}
