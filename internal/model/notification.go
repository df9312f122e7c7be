package model

import "time"

// Notification is an inbox message for a single user as stored in the
// `notifications` table.  Rows are written as a side effect of booking
// confirmation and admin cancellation; the owning user may mark them read
// or delete them.
type Notification struct {
	ID        uint64    `json:"id"`         // notifications.id
	UserID    uint64    `json:"user_id"`    // notifications.user_id
	Message   string    `json:"message"`    // notifications.message
	IsRead    bool      `json:"is_read"`    // notifications.is_read
	CreatedAt time.Time `json:"created_at"` // notifications.created_at
}
