package model

// Zone represents a seating area of the restaurant as stored in the
// `zones` table.  Tables reference their zone through tables.zone_id,
// and a zone cannot be deleted while any table still points at it.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – human readable zone name (e.g. "VIP", "Terrace").
//  Description – optional free-form description.
type Zone struct {
	ID          uint64  `json:"id"`          // zones.id
	Name        string  `json:"name"`        // zones.name
	Description *string `json:"description"` // zones.description (nullable)
}
