package model

// ZoneAvailability is a zone together with its tables annotated for one
// calendar date.  Table status is computed at read time from the set of
// confirmed bookings; it is never persisted.
type ZoneAvailability struct {
	Zone
	Tables []Table `json:"tables"`
}

// GroupByZone annotates each table with its derived status for a date and
// groups the result under its zone.  A table whose id appears in bookedIDs
// is reported as reserved, otherwise its administrative status is kept.
// Zones arrive ordered by id and tables by (zone_id, table_number); the
// grouping preserves both orders.  Zones without tables are included with
// an empty slice.
func GroupByZone(zones []Zone, tables []Table, bookedIDs map[uint64]struct{}) []ZoneAvailability {
	byZone := make(map[uint64]int, len(zones))
	out := make([]ZoneAvailability, 0, len(zones))
	for _, z := range zones {
		byZone[z.ID] = len(out)
		out = append(out, ZoneAvailability{Zone: z, Tables: []Table{}})
	}
	for _, t := range tables {
		idx, ok := byZone[t.ZoneID]
		if !ok {
			continue
		}
		if _, booked := bookedIDs[t.ID]; booked {
			t.Status = TableReserved
		}
		out[idx].Tables = append(out[idx].Tables, t)
	}
	return out
}
