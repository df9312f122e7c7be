package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fixcy/restaurant-booking/internal/model"
)

// ErrImageNotFound is returned when a slider image lookup or delete
// matches no row.
var ErrImageNotFound = errors.New("image not found")

// SliderRepo provides persistence for homepage slider images. The image
// files themselves live under the public uploads directory; the handler
// owns file I/O and this repository owns only the rows.
type SliderRepo struct {
	db *sql.DB
}

// NewSliderRepo returns a SliderRepo bound to the given database.
func NewSliderRepo(db *sql.DB) *SliderRepo { return &SliderRepo{db: db} }

// Create inserts a slider image row and populates the generated ID.
func (r *SliderRepo) Create(ctx context.Context, img *model.SliderImage) error {
	const q = `INSERT INTO slider_images (image_url, thumb_url, alt_text, link_url, sort_order)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, img.ImageURL, img.ThumbURL, img.AltText, img.LinkURL, img.SortOrder)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	img.ID = uint64(id)
	return nil
}

// List returns all slider images ordered by sort_order ascending.
func (r *SliderRepo) List(ctx context.Context) ([]model.SliderImage, error) {
	const q = `SELECT id, image_url, thumb_url, alt_text, link_url, sort_order, created_at
	           FROM slider_images ORDER BY sort_order ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.SliderImage, 0)
	for rows.Next() {
		var img model.SliderImage
		var thumb sql.NullString
		if err := rows.Scan(&img.ID, &img.ImageURL, &thumb, &img.AltText, &img.LinkURL, &img.SortOrder, &img.CreatedAt); err != nil {
			return nil, err
		}
		if thumb.Valid {
			t := thumb.String
			img.ThumbURL = &t
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

// GetByID fetches a single slider image. ErrImageNotFound is returned
// when no row exists.
func (r *SliderRepo) GetByID(ctx context.Context, id uint64) (model.SliderImage, error) {
	const q = `SELECT id, image_url, thumb_url, alt_text, link_url, sort_order, created_at
	           FROM slider_images WHERE id = ?`
	var img model.SliderImage
	var thumb sql.NullString
	err := r.db.QueryRowContext(ctx, q, id).Scan(&img.ID, &img.ImageURL, &thumb, &img.AltText, &img.LinkURL, &img.SortOrder, &img.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SliderImage{}, ErrImageNotFound
	}
	if err != nil {
		return model.SliderImage{}, err
	}
	if thumb.Valid {
		t := thumb.String
		img.ThumbURL = &t
	}
	return img, nil
}

// Update overwrites the mutable fields of a slider image row.
func (r *SliderRepo) Update(ctx context.Context, img *model.SliderImage) error {
	const q = `UPDATE slider_images SET image_url = ?, thumb_url = ?, alt_text = ?, link_url = ?, sort_order = ?
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, img.ImageURL, img.ThumbURL, img.AltText, img.LinkURL, img.SortOrder, img.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Zero affected rows may also mean an identical update; confirm
		// the row exists before reporting not found.
		if _, err := r.GetByID(ctx, img.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a slider image row. ErrImageNotFound is returned when
// the id matches nothing.
func (r *SliderRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM slider_images WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrImageNotFound
	}
	return nil
}
