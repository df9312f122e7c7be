package repository // repository holds data access logic for domain entities

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fixcy/restaurant-booking/internal/model"
)

// ErrZoneNotFound is returned when a zone lookup or delete matches no row.
var ErrZoneNotFound = errors.New("zone not found")

// ZoneRepo provides methods to create, list and delete zones. It embeds a
// database handle to perform queries and commands.
type ZoneRepo struct {
	db *sql.DB
}

// NewZoneRepo constructs a ZoneRepo with the given DB handle.
func NewZoneRepo(db *sql.DB) *ZoneRepo { return &ZoneRepo{db: db} }

// Create inserts a new zone. Name must be non-empty; Description may be
// nil. After insert the ID field of the zone is populated.
func (r *ZoneRepo) Create(ctx context.Context, z *model.Zone) error {
	const q = `INSERT INTO zones (name, description) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, z.Name, z.Description)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	z.ID = uint64(id)
	return nil
}

// List returns all zones ordered by id ascending.
func (r *ZoneRepo) List(ctx context.Context) ([]model.Zone, error) {
	const q = `SELECT id, name, description FROM zones ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Zone, 0)
	for rows.Next() {
		var z model.Zone
		var desc sql.NullString
		if err := rows.Scan(&z.ID, &z.Name, &desc); err != nil {
			return nil, err
		}
		if desc.Valid {
			d := desc.String
			z.Description = &d
		}
		out = append(out, z)
	}
	return out, rows.Err()
}

// Delete removes a zone by id. The foreign key from tables restricts the
// delete, so a zone that still has tables fails with ErrConflict rather
// than cascading. Deleting a missing zone returns ErrZoneNotFound.
func (r *ZoneRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM zones WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		if isMySQLErr(err, mysqlErrRowReferenced) {
			return ErrConflict
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrZoneNotFound
	}
	return nil
}
