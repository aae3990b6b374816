// Package repo contains all database access logic for the Hammock Spots API.
// HammockSpotRepo has a Postgres implementation (pgx) and a SQLite
// implementation (modernc.org/sqlite); both satisfy the same contract.
// Only SQL and type mapping live here; business rules belong to service.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/hammock-spots/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// HammockSpotRepo defines the persistence operations for hammock spots.
// The service layer depends on this interface, not on a concrete store.
type HammockSpotRepo interface {
	// Create inserts a new spot and returns the persisted record with the
	// store-assigned id, created_at, and updated_at populated.
	// Constraint violations are reported as domain.ErrValidation.
	Create(ctx context.Context, spot domain.HammockSpot) (domain.HammockSpot, error)

	// FindByID looks up a single spot. A missing row is not an error: it is
	// reported as domain.Absent so callers must decide what absence means.
	FindByID(ctx context.Context, id uuid.UUID) (domain.Lookup[domain.HammockSpot], error)

	// List returns every spot in insertion order.
	List(ctx context.Context) ([]domain.HammockSpot, error)

	// Update merges the non-nil fields of patch into the stored spot and
	// refreshes updated_at. Returns domain.ErrNotFound if no row matched.
	Update(ctx context.Context, id uuid.UUID, patch domain.HammockSpotPatch) error

	// Delete removes a spot by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgHammockSpotRepo is the Postgres implementation of HammockSpotRepo.
type pgHammockSpotRepo struct {
	db db
}

// NewHammockSpotRepo constructs a HammockSpotRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewHammockSpotRepo(db db) HammockSpotRepo {
	return &pgHammockSpotRepo{db: db}
}

const pgColumns = `id, name, lat, lng, owner_id, created_at, updated_at`

// Create inserts a new hammock_spots row and returns the full persisted record.
func (r *pgHammockSpotRepo) Create(ctx context.Context, spot domain.HammockSpot) (domain.HammockSpot, error) {
	const q = `
		INSERT INTO hammock_spots (name, lat, lng, owner_id)
		VALUES (@name, @lat, @lng, @owner_id)
		RETURNING ` + pgColumns

	args := pgx.NamedArgs{
		"name":     spot.Name,
		"lat":      spot.Lat,
		"lng":      spot.Lng,
		"owner_id": spot.OwnerID,
	}

	result, err := scanPgSpot(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.HammockSpot{}, fmt.Errorf("repo.HammockSpotRepo.Create: %w", classifyPgError(err))
	}
	return result, nil
}

// FindByID retrieves a spot by primary key.
func (r *pgHammockSpotRepo) FindByID(ctx context.Context, id uuid.UUID) (domain.Lookup[domain.HammockSpot], error) {
	const q = `SELECT ` + pgColumns + ` FROM hammock_spots WHERE id = @id`

	spot, err := scanPgSpot(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Absent[domain.HammockSpot](), nil
		}
		return domain.Lookup[domain.HammockSpot]{}, fmt.Errorf("repo.HammockSpotRepo.FindByID: %w", err)
	}
	return domain.Found(spot), nil
}

// List returns all spots in insertion order.
func (r *pgHammockSpotRepo) List(ctx context.Context) ([]domain.HammockSpot, error) {
	const q = `SELECT ` + pgColumns + ` FROM hammock_spots ORDER BY seq`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.HammockSpotRepo.List: %w", err)
	}
	defer rows.Close()

	var spots []domain.HammockSpot
	for rows.Next() {
		s, err := scanPgSpot(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.HammockSpotRepo.List: scan: %w", err)
		}
		spots = append(spots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.HammockSpotRepo.List: rows: %w", err)
	}

	return spots, nil
}

// Update merges the supplied fields; NULL parameters keep the stored value.
func (r *pgHammockSpotRepo) Update(ctx context.Context, id uuid.UUID, patch domain.HammockSpotPatch) error {
	const q = `
		UPDATE hammock_spots
		SET name       = COALESCE(@name, name),
		    lat        = COALESCE(@lat, lat),
		    lng        = COALESCE(@lng, lng),
		    updated_at = now()
		WHERE id = @id`

	args := pgx.NamedArgs{
		"id":   id,
		"name": patch.Name, // nil becomes NULL
		"lat":  patch.Lat,
		"lng":  patch.Lng,
	}

	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return fmt.Errorf("repo.HammockSpotRepo.Update: %w", classifyPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.HammockSpotRepo.Update: %w", domain.ErrNotFound)
	}
	return nil
}

// Delete removes a spot by primary key.
func (r *pgHammockSpotRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM hammock_spots WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.HammockSpotRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.HammockSpotRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by pgx.Row, pgx.Rows, *sql.Row, and *sql.Rows, so the
// scan helpers work for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanPgSpot maps a single Postgres row into a domain.HammockSpot.
func scanPgSpot(s scanner) (domain.HammockSpot, error) {
	var (
		spot    domain.HammockSpot
		id      pgtype.UUID
		ownerID pgtype.UUID
	)

	err := s.Scan(&id, &spot.Name, &spot.Lat, &spot.Lng, &ownerID, &spot.CreatedAt, &spot.UpdatedAt)
	if err != nil {
		return domain.HammockSpot{}, err
	}

	spot.ID = uuid.UUID(id.Bytes)
	spot.OwnerID = uuid.UUID(ownerID.Bytes)
	return spot, nil
}

// classifyPgError turns constraint violations into domain.ErrValidation so
// the store's own rejection reaches the client as a 422, carrying the
// constraint name as the message.
func classifyPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23502", "23514": // not_null_violation, check_violation
			field := pgErr.ColumnName
			if field == "" {
				field = pgErr.ConstraintName
			}
			return fmt.Errorf("%w: %s is invalid", domain.ErrValidation, field)
		}
	}
	return err
}
