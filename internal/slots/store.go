package slots

import "context"

// Store persists reservations. Implementations must enforce uniqueness of
// (date, slot) among confirmed rows at the storage layer and report a lost
// race as ErrSlotConflict.
type Store interface {
	// Insert attempts to persist a confirmed reservation. On success the
	// reservation's ID and CreatedAt are filled in.
	Insert(ctx context.Context, res *Reservation) error

	// Cancel soft-deletes a confirmed reservation. Returns ErrNotFound when
	// no confirmed row matches the id; canceling twice is not idempotent.
	Cancel(ctx context.Context, id string) error

	// ConfirmedByDate returns the confirmed reservations for one day.
	ConfirmedByDate(ctx context.Context, date string) ([]Reservation, error)

	// ListConfirmed returns confirmed reservations on or after fromDate,
	// ordered by date then slot.
	ListConfirmed(ctx context.Context, fromDate string) ([]Reservation, error)
}
