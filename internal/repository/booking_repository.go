package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fixcy/restaurant-booking/internal/model"
)

// ErrBookingNotFound is returned when a booking delete matches no row,
// either because the id never existed or the booking was already
// cancelled.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepo provides persistence for bookings. The write paths run
// inside a caller-owned transaction so that a booking and its
// notification commit or roll back as a unit; the caller must commit or
// rollback. The no-double-booking rule is enforced twice: a locking read
// inside the transaction serializes concurrent attempts for the same
// (table, date), and the unique key on (table_id, booking_date) backstops
// anything the lock misses.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying handle so handlers can begin transactions.
func (r *BookingRepo) DB() *sql.DB { return r.db }

// ExistsTx reports whether a confirmed booking already exists for the
// given table and date. The SELECT ... FOR UPDATE takes a row lock (or a
// gap lock when no row exists) so that two concurrent confirmations for
// the same table and date cannot both pass the check.
func (r *BookingRepo) ExistsTx(ctx context.Context, tx *sql.Tx, tableID uint64, date string) (bool, error) {
	const q = `SELECT id FROM bookings
	           WHERE table_id = ? AND booking_date = ? AND status = 'confirmed'
	           FOR UPDATE`
	var id uint64
	err := tx.QueryRowContext(ctx, q, tableID, date).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateTx inserts a confirmed booking within the scope of an existing
// transaction and populates the generated ID on the provided record. A
// duplicate-key failure on (table_id, booking_date) is reported as
// ErrTableBooked: it means a concurrent transaction won the race after
// our existence check. A foreign-key failure on table_id means the
// table does not exist and is reported as ErrTableNotFound.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	const q = `INSERT INTO bookings (user_id, table_id, booking_date, status)
	           VALUES (?, ?, ?, 'confirmed')`
	res, err := tx.ExecContext(ctx, q, b.UserID, b.TableID, b.BookingDate)
	if err != nil {
		if isMySQLErr(err, mysqlErrDupEntry) {
			return ErrTableBooked
		}
		if isMySQLErr(err, mysqlErrNoReferenced) {
			return ErrTableNotFound
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	b.Status = model.BookingConfirmed
	return nil
}

// GetTx loads a booking by id with a row lock, so a cancellation can
// read the occupant and table before deleting without racing another
// admin. Returns ErrBookingNotFound when no row matches.
func (r *BookingRepo) GetTx(ctx context.Context, tx *sql.Tx, id uint64) (model.Booking, error) {
	// DATE_FORMAT because parseTime=true would otherwise hand the DATE
	// column back as a time.Time.
	const q = `SELECT id, user_id, table_id, DATE_FORMAT(booking_date, '%Y-%m-%d'), status, created_at
	           FROM bookings WHERE id = ? FOR UPDATE`
	var b model.Booking
	err := tx.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.UserID, &b.TableID, &b.BookingDate, &b.Status, &b.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, ErrBookingNotFound
	}
	if err != nil {
		return model.Booking{}, err
	}
	return b, nil
}

// DeleteTx removes a booking by id within an existing transaction.
// Deleting zero rows means the booking never existed or was already
// cancelled, reported as ErrBookingNotFound so the caller rolls back.
func (r *BookingRepo) DeleteTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	const q = `DELETE FROM bookings WHERE id = ?`
	res, err := tx.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// BookedTableIDs returns the set of table ids with a confirmed booking on
// the given date. The availability view uses it to derive each table's
// reserved/available status at read time.
func (r *BookingRepo) BookedTableIDs(ctx context.Context, date string) (map[uint64]struct{}, error) {
	const q = `SELECT table_id FROM bookings WHERE booking_date = ? AND status = 'confirmed'`
	rows, err := r.db.QueryContext(ctx, q, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[uint64]struct{})
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = struct{}{}
	}
	return out, rows.Err()
}
