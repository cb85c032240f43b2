package slots

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ddlogi/quote-platform/internal/observability/metrics"
	"github.com/ddlogi/quote-platform/pkg/logging"
)

var tracer = otel.Tracer("ddlogi.internal.slots")

// Service is the availability gate in front of a Store. Reads fail open so a
// store outage never blocks the booking UI; writes fail closed and surface
// the error. Admin authorization happens at the HTTP boundary, not here.
type Service struct {
	store   Store
	logger  *logging.Logger
	metrics *metrics.SlotMetrics
}

// NewService builds the gate.
func NewService(store Store, logger *logging.Logger, m *metrics.SlotMetrics) *Service {
	if store == nil {
		panic("slots: store cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{store: store, logger: logger, metrics: m}
}

// FetchConfirmed returns the set of confirmed slot ids for a date. On store
// failure it logs and returns an empty set rather than an error.
func (s *Service) FetchConfirmed(ctx context.Context, date string) map[SlotID]bool {
	ctx, span := tracer.Start(ctx, "slots.fetch_confirmed")
	defer span.End()
	span.SetAttributes(attribute.String("ddlogi.date", date))

	confirmed := make(map[SlotID]bool)
	if !ValidDate(date) {
		s.metrics.ObserveFetch("invalid_date")
		return confirmed
	}

	rows, err := s.store.ConfirmedByDate(ctx, date)
	if err != nil {
		s.logger.Error("confirmed slot fetch failed, failing open", "date", date, "error", err)
		s.metrics.ObserveFetch("error")
		return confirmed
	}

	for _, row := range rows {
		confirmed[row.Slot] = true
	}
	s.metrics.ObserveFetch("ok")
	return confirmed
}

// IsAvailable reports whether a slot is free on a date, derived from a fresh
// fetch. A false positive is possible under concurrency; Reserve is the
// authority.
func (s *Service) IsAvailable(ctx context.Context, date string, slot SlotID) bool {
	return !s.FetchConfirmed(ctx, date)[slot]
}

// Reserve attempts the optimistic insert. ErrSlotConflict means the slot was
// taken by a concurrent caller and is authoritative; the caller must re-fetch
// and re-prompt instead of trusting any earlier availability read.
func (s *Service) Reserve(ctx context.Context, date string, slot SlotID, memo string) (*Reservation, error) {
	ctx, span := tracer.Start(ctx, "slots.reserve")
	defer span.End()
	span.SetAttributes(
		attribute.String("ddlogi.date", date),
		attribute.String("ddlogi.slot", string(slot)),
	)

	if !ValidDate(date) {
		s.metrics.ObserveReserve("invalid_date")
		return nil, ErrInvalidDate
	}
	if !ValidSlot(slot) {
		s.metrics.ObserveReserve("invalid_slot")
		return nil, ErrInvalidSlot
	}

	res := &Reservation{Date: date, Slot: slot, Memo: memo}
	if err := s.store.Insert(ctx, res); err != nil {
		if errors.Is(err, ErrSlotConflict) {
			s.logger.Info("slot reservation lost race", "date", date, "slot", slot)
			s.metrics.ObserveReserve("conflict")
			return nil, ErrSlotConflict
		}
		s.metrics.ObserveReserve("error")
		return nil, fmt.Errorf("slots: reserve failed: %w", err)
	}

	s.logger.Info("slot reserved", "date", date, "slot", slot, "id", res.ID)
	s.metrics.ObserveReserve("ok")
	return res, nil
}

// Cancel soft-deletes a confirmed reservation.
func (s *Service) Cancel(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "slots.cancel")
	defer span.End()
	span.SetAttributes(attribute.String("ddlogi.reservation_id", id))

	if id == "" {
		s.metrics.ObserveCancel("invalid_id")
		return ErrNotFound
	}

	if err := s.store.Cancel(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.metrics.ObserveCancel("not_found")
			return ErrNotFound
		}
		s.metrics.ObserveCancel("error")
		return fmt.Errorf("slots: cancel failed: %w", err)
	}

	s.logger.Info("slot reservation canceled", "id", id)
	s.metrics.ObserveCancel("ok")
	return nil
}

// ListConfirmed returns upcoming confirmed reservations for the admin panel.
func (s *Service) ListConfirmed(ctx context.Context, fromDate string) ([]Reservation, error) {
	ctx, span := tracer.Start(ctx, "slots.list_confirmed")
	defer span.End()

	if fromDate != "" && !ValidDate(fromDate) {
		return nil, ErrInvalidDate
	}

	rows, err := s.store.ListConfirmed(ctx, fromDate)
	if err != nil {
		return nil, fmt.Errorf("slots: list failed: %w", err)
	}
	return rows, nil
}
