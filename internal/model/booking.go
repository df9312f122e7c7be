package model

import "time"

// BookingConfirmed is the only status ever persisted: cancelling a booking
// deletes the row, it does not flip the status.
const BookingConfirmed = "confirmed"

// Booking records a user's reservation of a table for a calendar date as
// stored in the `bookings` table.  At most one confirmed booking may exist
// per (table, date); the unique key uq_bookings_table_date enforces this.
//
// Fields:
//  ID          – primary key identifier.
//  UserID      – user who made the booking.
//  TableID     – table being reserved.
//  BookingDate – calendar date of the reservation (YYYY-MM-DD).
//  Status      – always 'confirmed'.
//  CreatedAt   – creation timestamp.
type Booking struct {
	ID          uint64    `json:"id"`           // bookings.id
	UserID      uint64    `json:"user_id"`      // bookings.user_id
	TableID     uint64    `json:"table_id"`     // bookings.table_id
	BookingDate string    `json:"booking_date"` // bookings.booking_date
	Status      string    `json:"status"`       // bookings.status
	CreatedAt   time.Time `json:"created_at"`   // bookings.created_at
}
