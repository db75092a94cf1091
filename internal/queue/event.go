// Package queue defines message payloads exchanged over the message broker.
package queue

// QueueName is the durable queue carrying booking notifications.
const QueueName = "booking.created"

// BookingCreatedEvent is published when a booking is successfully
// created. It carries enough information for downstream consumers to
// log or notify without querying the primary database.
type BookingCreatedEvent struct {
	BookingID  uint64 `json:"booking_id"`
	UserID     uint64 `json:"user_id"`
	EventID    uint64 `json:"event_id"`
	EventTitle string `json:"event_title"`
	CreatedAt  string `json:"created_at"`
}
