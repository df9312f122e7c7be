// Package queue defines the booking event payloads exchanged over the
// message broker and the background consumer that turns them into an
// audit log.
package queue

// Queue names used for booking lifecycle events.
const (
	ConfirmedQueue = "booking.confirmed"
	CancelledQueue = "booking.cancelled"
)

// BookingConfirmedEvent is published after a booking transaction commits.
// It carries enough information for downstream consumers to log or
// notify without querying the primary database.
type BookingConfirmedEvent struct {
	BookingID   uint64 `json:"booking_id"`
	UserID      uint64 `json:"user_id"`
	TableID     uint64 `json:"table_id"`
	TableNumber string `json:"table_number"`
	BookingDate string `json:"booking_date"`
	ConfirmedAt string `json:"confirmed_at"`
}

// BookingCancelledEvent is published after an admin cancellation commits.
// Because the booking row is deleted on cancellation, this event and the
// audit log it feeds are the only durable record of the cancellation.
type BookingCancelledEvent struct {
	BookingID   uint64 `json:"booking_id"`
	UserID      uint64 `json:"user_id"`
	TableNumber string `json:"table_number"`
	CancelledAt string `json:"cancelled_at"`
}
