package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestNotificationRepoMarkRead(t *testing.T) {
	db, mock := newMockDB(t)
	// The user id is part of the statement, so ids owned by another user
	// simply match nothing.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET is_read = TRUE WHERE user_id = ? AND id IN (?,?)")).
		WithArgs(uint64(3), uint64(10), uint64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewNotificationRepo(db).MarkRead(context.Background(), 3, []uint64{10, 11})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepoDelete(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM notifications WHERE user_id = ? AND id IN (?)")).
		WithArgs(uint64(3), uint64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewNotificationRepo(db).Delete(context.Background(), 3, []uint64{10})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepoUnreadCount(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM notifications")).
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := NewNotificationRepo(db).UnreadCount(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepoEmptyIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepo(db)
	assert.NoError(t, repo.MarkRead(context.Background(), 3, nil))
	assert.NoError(t, repo.Delete(context.Background(), 3, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
