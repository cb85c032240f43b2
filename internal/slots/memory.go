package slots

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store for development and tests. The mutex
// spans the whole insert so the uniqueness check and the write are atomic.
type MemoryStore struct {
	mu   sync.RWMutex
	rows map[string]Reservation // by id
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[string]Reservation)}
}

// Insert persists a confirmed reservation, rejecting duplicates.
func (s *MemoryStore) Insert(ctx context.Context, res *Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.rows {
		if row.Date == res.Date && row.Slot == res.Slot && row.Status == StatusConfirmed {
			return ErrSlotConflict
		}
	}

	res.ID = uuid.New().String()
	res.Status = StatusConfirmed
	res.CreatedAt = time.Now().UTC()
	s.rows[res.ID] = *res
	return nil
}

// Cancel soft-deletes a confirmed reservation.
func (s *MemoryStore) Cancel(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok || row.Status != StatusConfirmed {
		return ErrNotFound
	}
	row.Status = StatusCanceled
	s.rows[id] = row
	return nil
}

// ConfirmedByDate returns the confirmed reservations for one day.
func (s *MemoryStore) ConfirmedByDate(ctx context.Context, date string) ([]Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Reservation
	for _, row := range s.rows {
		if row.Date == date && row.Status == StatusConfirmed {
			out = append(out, row)
		}
	}
	sortReservations(out)
	return out, nil
}

// ListConfirmed returns confirmed reservations on or after fromDate.
func (s *MemoryStore) ListConfirmed(ctx context.Context, fromDate string) ([]Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Reservation
	for _, row := range s.rows {
		if row.Status == StatusConfirmed && row.Date >= fromDate {
			out = append(out, row)
		}
	}
	sortReservations(out)
	return out, nil
}

func sortReservations(rows []Reservation) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return slotOrder(rows[i].Slot) < slotOrder(rows[j].Slot)
	})
}

func slotOrder(slot SlotID) int {
	n, err := strconv.Atoi(string(slot))
	if err != nil {
		return 1 << 30
	}
	return n
}
