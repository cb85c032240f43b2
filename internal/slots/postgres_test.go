package slots

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPGStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPostgresStore(mock), mock
}

func TestPostgresInsert(t *testing.T) {
	store, mock := newPGStore(t)
	created := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO confirmed_slots").
		WithArgs(pgxmock.AnyArg(), "2026-09-01", "9", "김OO 이사").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(created))

	res := &Reservation{Date: "2026-09-01", Slot: "9", Memo: "김OO 이사"}
	require.NoError(t, store.Insert(context.Background(), res))

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, StatusConfirmed, res.Status)
	assert.Equal(t, created, res.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresInsertUniqueViolationIsConflict(t *testing.T) {
	store, mock := newPGStore(t)

	mock.ExpectQuery("INSERT INTO confirmed_slots").
		WithArgs(pgxmock.AnyArg(), "2026-09-01", "9", "").
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err := store.Insert(context.Background(), &Reservation{Date: "2026-09-01", Slot: "9"})
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCancel(t *testing.T) {
	store, mock := newPGStore(t)

	mock.ExpectExec("UPDATE confirmed_slots").
		WithArgs("abc-123").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, store.Cancel(context.Background(), "abc-123"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCancelNotFound(t *testing.T) {
	store, mock := newPGStore(t)

	mock.ExpectExec("UPDATE confirmed_slots").
		WithArgs("abc-123").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, store.Cancel(context.Background(), "abc-123"), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresConfirmedByDate(t *testing.T) {
	store, mock := newPGStore(t)
	created := time.Now().UTC()

	mock.ExpectQuery("SELECT id, date, time_slot, status, memo, created_at").
		WithArgs("2026-09-01").
		WillReturnRows(pgxmock.
			NewRows([]string{"id", "date", "time_slot", "status", "memo", "created_at"}).
			AddRow("a", "2026-09-01", "9", "confirmed", "", created).
			AddRow("b", "2026-09-01", "12", "confirmed", "사다리차", created))

	rows, err := store.ConfirmedByDate(context.Background(), "2026-09-01")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, SlotID("9"), rows[0].Slot)
	assert.Equal(t, "사다리차", rows[1].Memo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListConfirmed(t *testing.T) {
	store, mock := newPGStore(t)

	mock.ExpectQuery("SELECT id, date, time_slot, status, memo, created_at").
		WithArgs("2026-09-01").
		WillReturnRows(pgxmock.NewRows([]string{"id", "date", "time_slot", "status", "memo", "created_at"}))

	rows, err := store.ListConfirmed(context.Background(), "2026-09-01")
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
