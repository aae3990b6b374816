package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/pkordes/hammock-spots/internal/domain"
)

// OpenSQLite opens (creating if necessary) the SQLite database at path using
// the pure-Go modernc driver. Pass ":memory:" for a throwaway database.
//
// SQLite allows one writer at a time, so the pool is capped at a single
// connection; this also keeps a ":memory:" database from being split across
// connections.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("repo.OpenSQLite: open: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{`PRAGMA journal_mode=WAL;`, `PRAGMA busy_timeout=5000;`} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("repo.OpenSQLite: %s: %w", pragma, err)
		}
	}
	return db, nil
}

// sqliteHammockSpotRepo is the SQLite implementation of HammockSpotRepo.
// IDs and timestamps are assigned here since SQLite has no uuid or now()
// defaults. Timestamps are stored as Unix nanoseconds.
type sqliteHammockSpotRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteHammockSpotRepo constructs a HammockSpotRepo backed by db.
func NewSQLiteHammockSpotRepo(db *sql.DB) HammockSpotRepo {
	return &sqliteHammockSpotRepo{db: db, now: func() time.Time { return time.Now().UTC() }}
}

const sqliteColumns = `id, name, lat, lng, owner_id, created_at, updated_at`

func (r *sqliteHammockSpotRepo) Create(ctx context.Context, spot domain.HammockSpot) (domain.HammockSpot, error) {
	const q = `
		INSERT INTO hammock_spots (id, name, lat, lng, owner_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	now := r.now()
	spot.ID = uuid.New()
	spot.CreatedAt = now
	spot.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, q,
		spot.ID.String(), spot.Name, spot.Lat, spot.Lng, spot.OwnerID.String(),
		now.UnixNano(), now.UnixNano(),
	)
	if err != nil {
		return domain.HammockSpot{}, fmt.Errorf("repo.SQLiteHammockSpotRepo.Create: %w", classifySQLiteError(err))
	}
	return spot, nil
}

func (r *sqliteHammockSpotRepo) FindByID(ctx context.Context, id uuid.UUID) (domain.Lookup[domain.HammockSpot], error) {
	const q = `SELECT ` + sqliteColumns + ` FROM hammock_spots WHERE id = ?`

	spot, err := scanSQLiteSpot(r.db.QueryRowContext(ctx, q, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Absent[domain.HammockSpot](), nil
		}
		return domain.Lookup[domain.HammockSpot]{}, fmt.Errorf("repo.SQLiteHammockSpotRepo.FindByID: %w", err)
	}
	return domain.Found(spot), nil
}

// List returns all spots in rowid (insertion) order.
func (r *sqliteHammockSpotRepo) List(ctx context.Context) ([]domain.HammockSpot, error) {
	const q = `SELECT ` + sqliteColumns + ` FROM hammock_spots ORDER BY rowid`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.SQLiteHammockSpotRepo.List: %w", err)
	}
	defer rows.Close()

	var spots []domain.HammockSpot
	for rows.Next() {
		s, err := scanSQLiteSpot(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.SQLiteHammockSpotRepo.List: scan: %w", err)
		}
		spots = append(spots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.SQLiteHammockSpotRepo.List: rows: %w", err)
	}
	return spots, nil
}

func (r *sqliteHammockSpotRepo) Update(ctx context.Context, id uuid.UUID, patch domain.HammockSpotPatch) error {
	const q = `
		UPDATE hammock_spots
		SET name       = COALESCE(?, name),
		    lat        = COALESCE(?, lat),
		    lng        = COALESCE(?, lng),
		    updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, q,
		nullable(patch.Name), nullable(patch.Lat), nullable(patch.Lng),
		r.now().UnixNano(), id.String(),
	)
	if err != nil {
		return fmt.Errorf("repo.SQLiteHammockSpotRepo.Update: %w", classifySQLiteError(err))
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("repo.SQLiteHammockSpotRepo.Update: rows affected: %w", err)
	} else if n == 0 {
		return fmt.Errorf("repo.SQLiteHammockSpotRepo.Update: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *sqliteHammockSpotRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM hammock_spots WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("repo.SQLiteHammockSpotRepo.Delete: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("repo.SQLiteHammockSpotRepo.Delete: rows affected: %w", err)
	} else if n == 0 {
		return fmt.Errorf("repo.SQLiteHammockSpotRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanSQLiteSpot(s scanner) (domain.HammockSpot, error) {
	var (
		spot               domain.HammockSpot
		id, ownerID        string
		createdAt, updated int64
	)

	if err := s.Scan(&id, &spot.Name, &spot.Lat, &spot.Lng, &ownerID, &createdAt, &updated); err != nil {
		return domain.HammockSpot{}, err
	}

	var err error
	if spot.ID, err = uuid.Parse(id); err != nil {
		return domain.HammockSpot{}, fmt.Errorf("parse id %q: %w", id, err)
	}
	if spot.OwnerID, err = uuid.Parse(ownerID); err != nil {
		return domain.HammockSpot{}, fmt.Errorf("parse owner_id %q: %w", ownerID, err)
	}
	spot.CreatedAt = time.Unix(0, createdAt).UTC()
	spot.UpdatedAt = time.Unix(0, updated).UTC()
	return spot, nil
}

// nullable converts a nil pointer into an untyped nil so database/sql binds
// NULL, and dereferences anything else.
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func classifySQLiteError(err error) error {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return fmt.Errorf("%w: %s", domain.ErrValidation, sqliteErr.Error())
		}
	}
	return err
}
