package inquiry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Service identifies which quote flow produced the inquiry.
type Service string

const (
	ServiceMove  Service = "move"
	ServiceClean Service = "clean"
)

// Record is a logged inquiry submission.
type Record struct {
	ID        string    `json:"id"`
	Service   Service   `json:"service"`
	Total     int64     `json:"total"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type pgxExec interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository logs inquiries so operators can follow up on quotes that never
// became bookings.
type Repository struct {
	db pgxExec
}

// NewRepository initializes a repo backed by pgxpool.
func NewRepository(db pgxExec) *Repository {
	if db == nil {
		panic("inquiry: pgx pool required")
	}
	return &Repository{db: db}
}

// Log persists one inquiry.
func (r *Repository) Log(ctx context.Context, service Service, total int64, message string) (*Record, error) {
	rec := &Record{
		ID:        uuid.New().String(),
		Service:   service,
		Total:     total,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	query := `
		INSERT INTO inquiries (id, service, total, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.Exec(ctx, query, rec.ID, string(rec.Service), rec.Total, rec.Message, rec.CreatedAt); err != nil {
		return nil, fmt.Errorf("inquiry: insert failed: %w", err)
	}
	return rec, nil
}
