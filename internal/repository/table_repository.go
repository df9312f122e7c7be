package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fixcy/restaurant-booking/internal/model"
)

// ErrTableNotFound is returned when a table lookup matches no row.
var ErrTableNotFound = errors.New("table not found")

// ErrZoneMissing is returned when a table insert or update references a
// zone that does not exist (foreign key failure).
var ErrZoneMissing = errors.New("zone does not exist")

// TableRepo provides methods to create, list, bulk-update and bulk-delete
// restaurant tables.
type TableRepo struct {
	db *sql.DB
}

// NewTableRepo constructs a TableRepo with the given DB handle.
func NewTableRepo(db *sql.DB) *TableRepo { return &TableRepo{db: db} }

// Create inserts a new table. The zone must exist; a foreign key failure
// is reported as ErrZoneMissing. After insert the ID field is populated
// and Status carries the database default.
func (r *TableRepo) Create(ctx context.Context, t *model.Table) error {
	const q = `INSERT INTO tables (table_number, capacity, zone_id) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, t.TableNumber, t.Capacity, t.ZoneID)
	if err != nil {
		if isMySQLErr(err, mysqlErrNoReferenced) {
			return ErrZoneMissing
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	if t.Status == "" {
		t.Status = model.TableAvailable
	}
	return nil
}

// NumberTx returns the display number of a table within an existing
// transaction. It is used by the booking flow to build the confirmation
// message. ErrTableNotFound is returned when the table does not exist.
func (r *TableRepo) NumberTx(ctx context.Context, tx *sql.Tx, id uint64) (string, error) {
	const q = `SELECT table_number FROM tables WHERE id = ?`
	var number string
	if err := tx.QueryRowContext(ctx, q, id).Scan(&number); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrTableNotFound
		}
		return "", err
	}
	return number, nil
}

// ListAvailable returns tables whose administrative status is 'available',
// ordered by zone then table number. This is the canonical order for both
// the guest booking view and the admin view.
func (r *TableRepo) ListAvailable(ctx context.Context) ([]model.Table, error) {
	const q = `SELECT id, table_number, capacity, zone_id, status
	           FROM tables WHERE status = 'available'
	           ORDER BY zone_id, table_number`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTables(rows)
}

// ListForAdmin returns every table joined with its confirmed booking for
// the given date, including the occupant's display name when booked.
// Ordering matches ListAvailable: zone then table number.
func (r *TableRepo) ListForAdmin(ctx context.Context, date string) ([]model.AdminTable, error) {
	const q = `SELECT t.id, t.table_number, t.capacity, t.zone_id, t.status,
	                  b.id, b.user_id, u.display_name
	           FROM tables t
	           LEFT JOIN bookings b ON t.id = b.table_id AND b.booking_date = ? AND b.status = 'confirmed'
	           LEFT JOIN users u ON b.user_id = u.id
	           ORDER BY t.zone_id, t.table_number`
	rows, err := r.db.QueryContext(ctx, q, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.AdminTable, 0)
	for rows.Next() {
		var t model.AdminTable
		var bookingID, bookedBy sql.NullInt64
		var bookedName sql.NullString
		if err := rows.Scan(&t.ID, &t.TableNumber, &t.Capacity, &t.ZoneID, &t.Status,
			&bookingID, &bookedBy, &bookedName); err != nil {
			return nil, err
		}
		if bookingID.Valid {
			id := uint64(bookingID.Int64)
			t.BookingID = &id
		}
		if bookedBy.Valid {
			uid := uint64(bookedBy.Int64)
			t.BookedByUserID = &uid
		}
		if bookedName.Valid {
			name := bookedName.String
			t.BookedByUserName = &name
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// BulkUpdate applies the provided fields to every table in ids using a
// single UPDATE statement. Nil fields are omitted from the statement.
// Passing no ids or no fields is the caller's validation error; the
// repository treats either as a no-op.
func (r *TableRepo) BulkUpdate(ctx context.Context, ids []uint64, capacity *uint32, zoneID *uint64) error {
	if len(ids) == 0 {
		return nil
	}
	sets := make([]string, 0, 2)
	args := make([]interface{}, 0, len(ids)+2)
	if capacity != nil {
		sets = append(sets, "capacity = ?")
		args = append(args, *capacity)
	}
	if zoneID != nil {
		sets = append(sets, "zone_id = ?")
		args = append(args, *zoneID)
	}
	if len(sets) == 0 {
		return nil
	}
	query := "UPDATE tables SET " + strings.Join(sets, ", ") +
		" WHERE id IN (" + placeholders(len(ids)) + ")"
	for _, id := range ids {
		args = append(args, id)
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	if err != nil && isMySQLErr(err, mysqlErrNoReferenced) {
		return ErrZoneMissing
	}
	return err
}

// BulkDelete removes every table in ids. Missing ids are silently
// skipped, so running the same delete twice is a no-op the second time.
func (r *TableRepo) BulkDelete(ctx context.Context, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	query := "DELETE FROM tables WHERE id IN (" + placeholders(len(ids)) + ")"
	args := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// scanTables drains a result set whose columns match the tables table.
func scanTables(rows *sql.Rows) ([]model.Table, error) {
	out := make([]model.Table, 0)
	for rows.Next() {
		var t model.Table
		if err := rows.Scan(&t.ID, &t.TableNumber, &t.Capacity, &t.ZoneID, &t.Status); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// placeholders returns n comma-joined "?" markers for IN clauses.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
