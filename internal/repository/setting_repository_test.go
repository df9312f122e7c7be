package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/fixcy/restaurant-booking/internal/model"
)

func TestSettingRepoBookingEnabled(t *testing.T) {
	tests := []struct {
		name  string
		setup func(sqlmock.Sqlmock)
		want  bool
	}{
		{
			name: "missing row means disabled",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT setting_value FROM settings").
					WithArgs(model.SettingBookingEnabled).
					WillReturnError(sql.ErrNoRows)
			},
			want: false,
		},
		{
			name: "enabled",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT setting_value FROM settings").
					WithArgs(model.SettingBookingEnabled).
					WillReturnRows(sqlmock.NewRows([]string{"setting_value"}).AddRow("true"))
			},
			want: true,
		},
		{
			name: "anything but the string true is disabled",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT setting_value FROM settings").
					WithArgs(model.SettingBookingEnabled).
					WillReturnRows(sqlmock.NewRows([]string{"setting_value"}).AddRow("TRUE"))
			},
			want: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tc.setup(mock)

			got, err := NewSettingRepo(db).BookingEnabled(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSettingRepoSetBookingEnabled(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO settings")).
		WithArgs(model.SettingBookingEnabled, "false").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewSettingRepo(db).SetBookingEnabled(context.Background(), false)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
