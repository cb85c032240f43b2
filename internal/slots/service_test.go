package slots

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddlogi/quote-platform/pkg/logging"
)

// failingStore simulates a store outage.
type failingStore struct{}

func (failingStore) Insert(context.Context, *Reservation) error { return errors.New("store down") }
func (failingStore) Cancel(context.Context, string) error       { return errors.New("store down") }
func (failingStore) ConfirmedByDate(context.Context, string) ([]Reservation, error) {
	return nil, errors.New("store down")
}
func (failingStore) ListConfirmed(context.Context, string) ([]Reservation, error) {
	return nil, errors.New("store down")
}

func newService(t *testing.T, store Store) *Service {
	t.Helper()
	return NewService(store, logging.Default(), nil)
}

func TestServiceReserveAndFetch(t *testing.T) {
	svc := newService(t, NewMemoryStore())
	ctx := context.Background()

	res, err := svc.Reserve(ctx, "2026-09-01", "9", "김OO 이사")
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)

	confirmed := svc.FetchConfirmed(ctx, "2026-09-01")
	assert.True(t, confirmed["9"])
	assert.False(t, confirmed["10"])

	assert.False(t, svc.IsAvailable(ctx, "2026-09-01", "9"))
	assert.True(t, svc.IsAvailable(ctx, "2026-09-01", "10"))
}

func TestServiceReserveConflictIsAuthoritative(t *testing.T) {
	svc := newService(t, NewMemoryStore())
	ctx := context.Background()

	_, err := svc.Reserve(ctx, "2026-09-01", "9", "")
	require.NoError(t, err)

	_, err = svc.Reserve(ctx, "2026-09-01", "9", "")
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestServiceReserveValidation(t *testing.T) {
	svc := newService(t, NewMemoryStore())
	ctx := context.Background()

	_, err := svc.Reserve(ctx, "not-a-date", "9", "")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.Reserve(ctx, "2026-09-01", "99", "")
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestServiceFetchFailsOpen(t *testing.T) {
	svc := newService(t, failingStore{})

	confirmed := svc.FetchConfirmed(context.Background(), "2026-09-01")
	assert.Empty(t, confirmed)
	assert.True(t, svc.IsAvailable(context.Background(), "2026-09-01", "9"))
}

func TestServiceReserveFailsClosed(t *testing.T) {
	svc := newService(t, failingStore{})

	_, err := svc.Reserve(context.Background(), "2026-09-01", "9", "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSlotConflict)
}

func TestServiceCancel(t *testing.T) {
	svc := newService(t, NewMemoryStore())
	ctx := context.Background()

	res, err := svc.Reserve(ctx, "2026-09-01", "9", "")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, res.ID))
	assert.ErrorIs(t, svc.Cancel(ctx, res.ID), ErrNotFound)
	assert.ErrorIs(t, svc.Cancel(ctx, ""), ErrNotFound)

	assert.True(t, svc.IsAvailable(ctx, "2026-09-01", "9"))
}

func TestServiceListConfirmed(t *testing.T) {
	svc := newService(t, NewMemoryStore())
	ctx := context.Background()

	_, err := svc.Reserve(ctx, "2026-09-02", "7", "")
	require.NoError(t, err)
	_, err = svc.Reserve(ctx, "2026-09-01", "9", "")
	require.NoError(t, err)

	rows, err := svc.ListConfirmed(ctx, "2026-09-01")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-09-01", rows[0].Date)

	_, err = svc.ListConfirmed(ctx, "bogus")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
