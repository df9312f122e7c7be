// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting database error codes themselves. For example, ErrConflict
// signals that an operation cannot proceed because of existing dependent
// records (deleting a zone that still has tables), while ErrTableBooked
// reports the double-booking case specifically.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrConflict is returned when a delete or update cannot be performed
// because of conflicting state, such as attempting to delete a zone
// that still has tables assigned. Handlers should translate this into
// an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrTableBooked is returned by the booking repository when the requested
// table already has a confirmed booking for the requested date, whether
// detected by the locking read or by the unique key on insert. Handlers
// should translate this into an HTTP 409 response.
var ErrTableBooked = errors.New("table already booked for this date")

// MySQL server error numbers the repositories care about.
const (
	mysqlErrDupEntry      = 1062 // ER_DUP_ENTRY
	mysqlErrRowReferenced = 1451 // ER_ROW_IS_REFERENCED_2
	mysqlErrNoReferenced  = 1452 // ER_NO_REFERENCED_ROW_2
)

// isMySQLErr reports whether err is a MySQL server error with the given
// number.
func isMySQLErr(err error, number uint16) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == number
}
