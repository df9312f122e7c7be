package handler

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixcy/restaurant-booking/internal/repository"
)

func newAdminHandler(t *testing.T) (*AdminHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	h := NewAdminHandler(
		repository.NewZoneRepo(db),
		repository.NewTableRepo(db),
		repository.NewBookingRepo(db),
		repository.NewNotificationRepo(db),
		repository.NewSettingRepo(db),
	)
	return h, mock
}

func adminRequest(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateZone(t *testing.T) {
	t.Run("name required", func(t *testing.T) {
		h, _ := newAdminHandler(t)
		c, rec := adminRequest(t, http.MethodPost, "/v1/admin/zones", `{"name":""}`)

		require.NoError(t, h.CreateZone(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Zone name is required.")
	})

	t.Run("created", func(t *testing.T) {
		h, mock := newAdminHandler(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO zones")).
			WithArgs("VIP", nil).
			WillReturnResult(sqlmock.NewResult(3, 1))

		c, rec := adminRequest(t, http.MethodPost, "/v1/admin/zones", `{"name":"VIP"}`)
		require.NoError(t, h.CreateZone(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteZoneWithTables(t *testing.T) {
	h, mock := newAdminHandler(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM zones WHERE id = ?")).
		WithArgs(uint64(1)).
		WillReturnError(&mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"})

	c, rec := adminRequest(t, http.MethodDelete, "/v1/admin/zones/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.DeleteZone(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cannot delete zone. Please remove all tables from this zone first.")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTablesValidation(t *testing.T) {
	t.Run("no ids", func(t *testing.T) {
		h, _ := newAdminHandler(t)
		c, rec := adminRequest(t, http.MethodPut, "/v1/admin/tables", `{"capacity":4}`)

		require.NoError(t, h.UpdateTables(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no fields", func(t *testing.T) {
		h, _ := newAdminHandler(t)
		c, rec := adminRequest(t, http.MethodPut, "/v1/admin/tables", `{"ids":[1,2]}`)

		require.NoError(t, h.UpdateTables(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCancelBooking(t *testing.T) {
	t.Run("missing booking", func(t *testing.T) {
		h, mock := newAdminHandler(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, user_id, table_id, DATE_FORMAT").
			WithArgs(uint64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		c, rec := adminRequest(t, http.MethodPost, "/v1/admin/bookings/cancel", `{"booking_id":99}`)
		require.NoError(t, h.CancelBooking(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cancelled with notification", func(t *testing.T) {
		h, mock := newAdminHandler(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, user_id, table_id, DATE_FORMAT").
			WithArgs(uint64(11)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "table_id", "booking_date", "status", "created_at"}).
				AddRow(11, 3, 7, "2025-07-23", "confirmed", time.Now()))
		mock.ExpectQuery("SELECT table_number FROM tables").
			WithArgs(uint64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"table_number"}).AddRow("V1"))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE id = ?")).
			WithArgs(uint64(11)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO notifications")).
			WithArgs(uint64(3), "We're sorry, your booking for table V1 has been cancelled by an administrator. Please contact us for more details.").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		c, rec := adminRequest(t, http.MethodPost, "/v1/admin/bookings/cancel", `{"booking_id":11}`)
		require.NoError(t, h.CancelBooking(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSetBookingStatus(t *testing.T) {
	t.Run("value required", func(t *testing.T) {
		h, _ := newAdminHandler(t)
		c, rec := adminRequest(t, http.MethodPost, "/v1/admin/booking-status", `{}`)

		require.NoError(t, h.SetBookingStatus(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("gate flipped off", func(t *testing.T) {
		h, mock := newAdminHandler(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO settings")).
			WithArgs("booking_enabled", "false").
			WillReturnResult(sqlmock.NewResult(0, 1))

		c, rec := adminRequest(t, http.MethodPost, "/v1/admin/booking-status", `{"is_booking_enabled":false}`)
		require.NoError(t, h.SetBookingStatus(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"is_booking_enabled":false`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
