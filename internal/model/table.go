package model

// Table statuses. AdminStatus is what the restaurant staff set on the row
// itself; the reserved/available status shown to guests is derived per date
// from the bookings table and never persisted.
const (
	TableAvailable   = "available"
	TableUnavailable = "unavailable"
	TableReserved    = "reserved"
)

// Table represents a physical table as stored in the `tables` table.
//
// Fields:
//  ID          – primary key identifier.
//  TableNumber – display label of the table (e.g. "V1"). Uniqueness within
//                a zone is not enforced.
//  Capacity    – number of seats.
//  ZoneID      – zone the table belongs to.
//  Status      – administrative status ('available' or 'unavailable').
type Table struct {
	ID          uint64 `json:"id"`           // tables.id
	TableNumber string `json:"table_number"` // tables.table_number
	Capacity    uint32 `json:"capacity"`     // tables.capacity
	ZoneID      uint64 `json:"zone_id"`      // tables.zone_id
	Status      string `json:"status"`       // tables.status
}

// AdminTable is a table row as presented on the admin management screen:
// the table itself plus today's confirmed booking, if one exists.
type AdminTable struct {
	Table
	BookingID        *uint64 `json:"booking_id,omitempty"`          // today's booking id
	BookedByUserID   *uint64 `json:"booked_by_user_id,omitempty"`   // occupant user id
	BookedByUserName *string `json:"booked_by_user_name,omitempty"` // occupant display name
}
