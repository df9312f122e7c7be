package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixcy/restaurant-booking/internal/model"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func beginTx(t *testing.T, db *sql.DB, mock sqlmock.Sqlmock) *sql.Tx {
	t.Helper()
	mock.ExpectBegin()
	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	return tx
}

func TestBookingRepoExistsTx(t *testing.T) {
	tests := []struct {
		name string
		rows *sqlmock.Rows
		want bool
	}{
		{name: "already booked", rows: sqlmock.NewRows([]string{"id"}).AddRow(42), want: true},
		{name: "slot free", rows: sqlmock.NewRows([]string{"id"}), want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tx := beginTx(t, db, mock)
			mock.ExpectQuery("SELECT id FROM bookings").
				WithArgs(uint64(7), "2025-07-23").
				WillReturnRows(tc.rows)

			got, err := NewBookingRepo(db).ExistsTx(context.Background(), tx, 7, "2025-07-23")
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookingRepoCreateTx(t *testing.T) {
	t.Run("success populates id and status", func(t *testing.T) {
		db, mock := newMockDB(t)
		tx := beginTx(t, db, mock)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
			WithArgs(uint64(3), uint64(7), "2025-07-23").
			WillReturnResult(sqlmock.NewResult(11, 1))

		b := model.Booking{UserID: 3, TableID: 7, BookingDate: "2025-07-23"}
		err := NewBookingRepo(db).CreateTx(context.Background(), tx, &b)
		assert.NoError(t, err)
		assert.Equal(t, uint64(11), b.ID)
		assert.Equal(t, model.BookingConfirmed, b.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign key failure means the table does not exist", func(t *testing.T) {
		db, mock := newMockDB(t)
		tx := beginTx(t, db, mock)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
			WithArgs(uint64(3), uint64(999), "2025-07-23").
			WillReturnError(&mysql.MySQLError{Number: 1452, Message: "a foreign key constraint fails"})

		b := model.Booking{UserID: 3, TableID: 999, BookingDate: "2025-07-23"}
		err := NewBookingRepo(db).CreateTx(context.Background(), tx, &b)
		assert.ErrorIs(t, err, ErrTableNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate key means the slot was taken", func(t *testing.T) {
		db, mock := newMockDB(t)
		tx := beginTx(t, db, mock)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
			WithArgs(uint64(3), uint64(7), "2025-07-23").
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

		b := model.Booking{UserID: 3, TableID: 7, BookingDate: "2025-07-23"}
		err := NewBookingRepo(db).CreateTx(context.Background(), tx, &b)
		assert.ErrorIs(t, err, ErrTableBooked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepoGetTx(t *testing.T) {
	db, mock := newMockDB(t)
	tx := beginTx(t, db, mock)
	mock.ExpectQuery("SELECT id, user_id, table_id, DATE_FORMAT").
		WithArgs(uint64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := NewBookingRepo(db).GetTx(context.Background(), tx, 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepoDeleteTx(t *testing.T) {
	t.Run("missing booking", func(t *testing.T) {
		db, mock := newMockDB(t)
		tx := beginTx(t, db, mock)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE id = ?")).
			WithArgs(uint64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewBookingRepo(db).DeleteTx(context.Background(), tx, 99)
		assert.ErrorIs(t, err, ErrBookingNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deleted", func(t *testing.T) {
		db, mock := newMockDB(t)
		tx := beginTx(t, db, mock)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE id = ?")).
			WithArgs(uint64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewBookingRepo(db).DeleteTx(context.Background(), tx, 5)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepoBookedTableIDs(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT table_id FROM bookings").
		WithArgs("2025-07-23").
		WillReturnRows(sqlmock.NewRows([]string{"table_id"}).AddRow(1).AddRow(4))

	got, err := NewBookingRepo(db).BookedTableIDs(context.Background(), "2025-07-23")
	assert.NoError(t, err)
	assert.Equal(t, map[uint64]struct{}{1: {}, 4: {}}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
