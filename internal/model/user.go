package model

import "time"

// User roles as stored in users.role.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an application user as stored in the `users` table.
// Accounts are created on the first successful LINE login and the
// display name and picture are refreshed on every subsequent login.
//
// Fields:
//  ID          – primary key identifier.
//  LineID      – unique identifier assigned by the LINE platform.
//  DisplayName – profile display name from LINE.
//  PictureURL  – profile picture URL from LINE (may be empty).
//  Role        – 'admin' or 'user'; defaults to 'user' on first login.
//  CreatedAt   – timestamp of first login.
type User struct {
	ID          uint64    `json:"id"`           // users.id
	LineID      string    `json:"line_id"`      // users.line_id
	DisplayName string    `json:"display_name"` // users.display_name
	PictureURL  string    `json:"picture_url"`  // users.picture_url
	Role        string    `json:"role"`         // users.role
	CreatedAt   time.Time `json:"created_at"`   // users.created_at
}
