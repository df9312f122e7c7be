package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fixcy/restaurant-booking/internal/model"
)

// UserRepo provides persistence for users resolved from LINE logins.
type UserRepo struct{ DB *sql.DB }

// NewUserRepo returns a UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// UpsertByLineID resolves a LINE profile to a local user row. On first
// login a new row is inserted with the default 'user' role; on every
// later login the display name and picture are refreshed so the local
// profile tracks LINE. The full row is returned either way.
func (r *UserRepo) UpsertByLineID(ctx context.Context, lineID, displayName, pictureURL string) (model.User, error) {
	_, err := r.getByLineID(ctx, lineID)
	switch {
	case err == nil:
		const upd = `UPDATE users SET display_name = ?, picture_url = ? WHERE line_id = ?`
		if _, err := r.DB.ExecContext(ctx, upd, displayName, pictureURL, lineID); err != nil {
			return model.User{}, err
		}
	case errors.Is(err, sql.ErrNoRows):
		const ins = `INSERT INTO users (line_id, display_name, picture_url, role) VALUES (?, ?, ?, 'user')`
		if _, err := r.DB.ExecContext(ctx, ins, lineID, displayName, pictureURL); err != nil {
			// A concurrent first login can hit the unique key; fall
			// through to the read in that case.
			if !isMySQLErr(err, mysqlErrDupEntry) {
				return model.User{}, err
			}
		}
	default:
		return model.User{}, err
	}
	return r.getByLineID(ctx, lineID)
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	var pic sql.NullString
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, line_id, display_name, picture_url, role, created_at FROM users WHERE id = ? LIMIT 1",
		id).Scan(&u.ID, &u.LineID, &u.DisplayName, &pic, &u.Role, &u.CreatedAt)
	if pic.Valid {
		u.PictureURL = pic.String
	}
	return u, err
}

func (r *UserRepo) getByLineID(ctx context.Context, lineID string) (model.User, error) {
	var u model.User
	var pic sql.NullString
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, line_id, display_name, picture_url, role, created_at FROM users WHERE line_id = ? LIMIT 1",
		lineID).Scan(&u.ID, &u.LineID, &u.DisplayName, &pic, &u.Role, &u.CreatedAt)
	if pic.Valid {
		u.PictureURL = pic.String
	}
	return u, err
}
