package repository

import (
	"context"
	"database/sql"

	"github.com/fixcy/restaurant-booking/internal/model"
)

// NotificationRepo provides persistence for inbox notifications.
// Creation happens inside the booking transactions so that a booking and
// its message commit together; reads and flag updates are scoped to the
// owning user in the query itself, so no separate ownership check is
// needed.
type NotificationRepo struct {
	db *sql.DB
}

// NewNotificationRepo returns a NotificationRepo bound to the given
// database.
func NewNotificationRepo(db *sql.DB) *NotificationRepo { return &NotificationRepo{db: db} }

// CreateTx inserts a notification for a user within the scope of an
// existing transaction. The caller must commit or rollback.
func (r *NotificationRepo) CreateTx(ctx context.Context, tx *sql.Tx, userID uint64, message string) error {
	const q = `INSERT INTO notifications (user_id, message) VALUES (?, ?)`
	_, err := tx.ExecContext(ctx, q, userID, message)
	return err
}

// ListByUser returns all notifications for a user, newest first.
func (r *NotificationRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Notification, error) {
	const q = `SELECT id, user_id, message, is_read, created_at
	           FROM notifications WHERE user_id = ?
	           ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Notification, 0)
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// UnreadCount returns how many unread notifications a user has.
func (r *NotificationRepo) UnreadCount(ctx context.Context, userID uint64) (int, error) {
	const q = `SELECT COUNT(*) FROM notifications WHERE user_id = ? AND is_read = FALSE`
	var n int
	err := r.db.QueryRowContext(ctx, q, userID).Scan(&n)
	return n, err
}

// MarkRead flips is_read on the given notifications, restricted to rows
// owned by the user. Ids belonging to someone else are silently ignored.
func (r *NotificationRepo) MarkRead(ctx context.Context, userID uint64, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	query := "UPDATE notifications SET is_read = TRUE WHERE user_id = ? AND id IN (" + placeholders(len(ids)) + ")"
	args := make([]interface{}, 0, len(ids)+1)
	args = append(args, userID)
	for _, id := range ids {
		args = append(args, id)
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// Delete removes the given notifications, restricted to rows owned by
// the user.
func (r *NotificationRepo) Delete(ctx context.Context, userID uint64, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	query := "DELETE FROM notifications WHERE user_id = ? AND id IN (" + placeholders(len(ids)) + ")"
	args := make([]interface{}, 0, len(ids)+1)
	args = append(args, userID)
	for _, id := range ids {
		args = append(args, id)
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}
