package distance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ddlogi/quote-platform/internal/observability/metrics"
	"github.com/ddlogi/quote-platform/pkg/logging"
)

var tracer = otel.Tracer("ddlogi.internal.distance")

// Resolver turns addresses into a total trip distance. Road distance comes
// from the route provider; when that fails the straight-line estimate steps
// in. A failed geocode is never papered over, since a zero distance would
// silently under-price the move.
type Resolver struct {
	geocoder Geocoder
	routes   RouteClient
	timeout  time.Duration
	logger   *logging.Logger
	metrics  *metrics.DistanceMetrics
}

// NewResolver builds a resolver.
func NewResolver(geocoder Geocoder, routes RouteClient, timeout time.Duration, logger *logging.Logger, m *metrics.DistanceMetrics) *Resolver {
	if geocoder == nil {
		panic("distance: geocoder cannot be nil")
	}
	if routes == nil {
		panic("distance: route client cannot be nil")
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Resolver{geocoder: geocoder, routes: routes, timeout: timeout, logger: logger, metrics: m}
}

// Result is a resolved trip distance.
type Result struct {
	DistanceKm int    `json:"distance_km"`
	Source     string `json:"source"` // "road" or "straight"
}

// Resolve computes the distance origin -> [waypoint ->] destination. Legs are
// resolved independently and summed; if any leg needed the straight-line
// fallback the whole result is marked "straight".
func (r *Resolver) Resolve(ctx context.Context, origin, waypoint, dest string) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	ctx, span := tracer.Start(ctx, "distance.resolve")
	defer span.End()
	span.SetAttributes(attribute.Bool("ddlogi.has_waypoint", waypoint != ""))

	started := time.Now()

	originCoord, err := r.geocoder.Geocode(ctx, origin)
	if err != nil {
		return Result{}, r.geocodeErr(origin, err)
	}
	destCoord, err := r.geocoder.Geocode(ctx, dest)
	if err != nil {
		return Result{}, r.geocodeErr(dest, err)
	}

	var legs []Coordinate
	if waypoint != "" {
		wpCoord, err := r.geocoder.Geocode(ctx, waypoint)
		if err != nil {
			return Result{}, r.geocodeErr(waypoint, err)
		}
		legs = []Coordinate{originCoord, wpCoord, destCoord}
	} else {
		legs = []Coordinate{originCoord, destCoord}
	}

	var totalKm float64
	source := "road"
	for i := 0; i+1 < len(legs); i++ {
		km, legSource := r.legKm(ctx, legs[i], legs[i+1])
		if legSource == "straight" {
			source = "straight"
		}
		totalKm += km
	}

	km := int(math.Max(0, math.Round(totalKm)))
	r.metrics.ObserveResolve(source, "ok")
	r.metrics.ObserveLatency(source, time.Since(started).Seconds())
	return Result{DistanceKm: km, Source: source}, nil
}

func (r *Resolver) legKm(ctx context.Context, from, to Coordinate) (float64, string) {
	km, err := r.routes.RoadDistanceKm(ctx, from, to)
	if err == nil {
		return km, "road"
	}
	r.logger.Warn("road distance failed, using straight-line fallback", "error", err)
	return HaversineKm(from, to), "straight"
}

func (r *Resolver) geocodeErr(address string, err error) error {
	if errors.Is(err, ErrAddressNotFound) {
		r.metrics.ObserveResolve("geocode", "not_found")
		return fmt.Errorf("%w: %q", ErrAddressNotFound, address)
	}
	r.metrics.ObserveResolve("geocode", "error")
	return fmt.Errorf("distance: geocode %q failed: %w", address, err)
}
