package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the SQLSTATE raised by the partial unique index on
// (date, time_slot) where status = 'confirmed'.
const pgUniqueViolation = "23505"

type pgxDB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore persists reservations in the confirmed_slots table.
type PostgresStore struct {
	db pgxDB
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore initializes a store backed by a pgx pool or compatible.
func NewPostgresStore(db pgxDB) *PostgresStore {
	if db == nil {
		panic("slots: pgx pool required")
	}
	return &PostgresStore{db: db}
}

// Insert attempts the confirmed row insert. The database's unique constraint
// is the arbiter of races: a 23505 comes back as ErrSlotConflict.
func (s *PostgresStore) Insert(ctx context.Context, res *Reservation) error {
	id := uuid.New()
	query := `
		INSERT INTO confirmed_slots (id, date, time_slot, status, memo)
		VALUES ($1, $2, $3, 'confirmed', $4)
		RETURNING created_at
	`
	err := s.db.QueryRow(ctx, query, id, res.Date, string(res.Slot), res.Memo).Scan(&res.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrSlotConflict
		}
		return fmt.Errorf("slots: insert failed: %w", err)
	}

	res.ID = id.String()
	res.Status = StatusConfirmed
	return nil
}

// Cancel transitions a confirmed row to canceled.
func (s *PostgresStore) Cancel(ctx context.Context, id string) error {
	query := `
		UPDATE confirmed_slots
		SET status = 'canceled'
		WHERE id = $1 AND status = 'confirmed'
	`
	tag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("slots: cancel failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ConfirmedByDate returns the confirmed reservations for one day.
func (s *PostgresStore) ConfirmedByDate(ctx context.Context, date string) ([]Reservation, error) {
	query := `
		SELECT id, date, time_slot, status, memo, created_at
		FROM confirmed_slots
		WHERE date = $1 AND status = 'confirmed'
		ORDER BY time_slot
	`
	rows, err := s.db.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("slots: select by date failed: %w", err)
	}
	defer rows.Close()
	return scanReservations(rows)
}

// ListConfirmed returns confirmed reservations on or after fromDate.
func (s *PostgresStore) ListConfirmed(ctx context.Context, fromDate string) ([]Reservation, error) {
	query := `
		SELECT id, date, time_slot, status, memo, created_at
		FROM confirmed_slots
		WHERE status = 'confirmed' AND date >= $1
		ORDER BY date, time_slot
	`
	rows, err := s.db.Query(ctx, query, fromDate)
	if err != nil {
		return nil, fmt.Errorf("slots: list failed: %w", err)
	}
	defer rows.Close()
	return scanReservations(rows)
}

func scanReservations(rows pgx.Rows) ([]Reservation, error) {
	var out []Reservation
	for rows.Next() {
		var r Reservation
		if err := rows.Scan(&r.ID, &r.Date, &r.Slot, &r.Status, &r.Memo, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("slots: scan failed: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("slots: rows failed: %w", err)
	}
	return out, nil
}
