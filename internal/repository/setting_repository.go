package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/fixcy/restaurant-booking/internal/model"
)

// SettingRepo provides access to the key/value settings table. Its main
// client is the booking gate: a single boolean row keyed by
// model.SettingBookingEnabled.
type SettingRepo struct {
	db *sql.DB
}

// NewSettingRepo returns a SettingRepo bound to the given database.
func NewSettingRepo(db *sql.DB) *SettingRepo { return &SettingRepo{db: db} }

// BookingEnabled reports whether new bookings are accepted. A missing
// row counts as disabled; the value is compared against the string
// "true", matching how the admin toggle writes it.
func (r *SettingRepo) BookingEnabled(ctx context.Context) (bool, error) {
	const q = `SELECT setting_value FROM settings WHERE setting_key = ?`
	var v string
	err := r.db.QueryRowContext(ctx, q, model.SettingBookingEnabled).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

// SetBookingEnabled upserts the booking gate row. Toggling the gate does
// not touch bookings already committed; the gate is only consulted
// before a new confirmation starts.
func (r *SettingRepo) SetBookingEnabled(ctx context.Context, enabled bool) error {
	const q = `INSERT INTO settings (setting_key, setting_value) VALUES (?, ?)
	           ON DUPLICATE KEY UPDATE setting_value = VALUES(setting_value)`
	_, err := r.db.ExecContext(ctx, q, model.SettingBookingEnabled, strconv.FormatBool(enabled))
	return err
}
