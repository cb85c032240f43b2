package distance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddlogi/quote-platform/pkg/logging"
)

var (
	seoul  = Coordinate{Lat: 37.5665, Lng: 126.9780}
	busan  = Coordinate{Lat: 35.1796, Lng: 129.0756}
	daejon = Coordinate{Lat: 36.3504, Lng: 127.3845}
)

type fakeGeocoder struct {
	coords map[string]Coordinate
}

func (f fakeGeocoder) Geocode(_ context.Context, address string) (Coordinate, error) {
	c, ok := f.coords[address]
	if !ok {
		return Coordinate{}, ErrAddressNotFound
	}
	return c, nil
}

type fakeRoutes struct {
	km    float64
	err   error
	calls int
}

func (f *fakeRoutes) RoadDistanceKm(context.Context, Coordinate, Coordinate) (float64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.km, nil
}

func newResolver(t *testing.T, routes RouteClient) *Resolver {
	t.Helper()
	geo := fakeGeocoder{coords: map[string]Coordinate{
		"서울시청":  seoul,
		"부산시청":  busan,
		"대전시청":  daejon,
	}}
	return NewResolver(geo, routes, time.Second, logging.Default(), nil)
}

func TestResolveRoadDistance(t *testing.T) {
	routes := &fakeRoutes{km: 325.4}
	r := newResolver(t, routes)

	res, err := r.Resolve(context.Background(), "서울시청", "", "부산시청")
	require.NoError(t, err)
	assert.Equal(t, 325, res.DistanceKm)
	assert.Equal(t, "road", res.Source)
	assert.Equal(t, 1, routes.calls)
}

func TestResolveWaypointSumsLegs(t *testing.T) {
	routes := &fakeRoutes{km: 100}
	r := newResolver(t, routes)

	res, err := r.Resolve(context.Background(), "서울시청", "대전시청", "부산시청")
	require.NoError(t, err)
	assert.Equal(t, 200, res.DistanceKm)
	assert.Equal(t, 2, routes.calls)
}

func TestResolveFallsBackToStraightLine(t *testing.T) {
	routes := &fakeRoutes{err: ErrProviderUnavailable}
	r := newResolver(t, routes)

	res, err := r.Resolve(context.Background(), "서울시청", "", "부산시청")
	require.NoError(t, err)
	assert.Equal(t, "straight", res.Source)

	// Seoul to Busan is roughly 325km great-circle.
	assert.InDelta(t, 325, res.DistanceKm, 15)
}

func TestResolveUnknownAddressSurfaces(t *testing.T) {
	r := newResolver(t, &fakeRoutes{km: 10})

	_, err := r.Resolve(context.Background(), "서울시청", "", "없는주소")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestResolveUnknownWaypointSurfaces(t *testing.T) {
	r := newResolver(t, &fakeRoutes{km: 10})

	_, err := r.Resolve(context.Background(), "서울시청", "없는주소", "부산시청")
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestResolveGeocodeErrorNotSilenced(t *testing.T) {
	geo := fakeGeocoderErr{}
	r := NewResolver(geo, &fakeRoutes{km: 10}, time.Second, logging.Default(), nil)

	_, err := r.Resolve(context.Background(), "서울시청", "", "부산시청")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAddressNotFound)
}

type fakeGeocoderErr struct{}

func (fakeGeocoderErr) Geocode(context.Context, string) (Coordinate, error) {
	return Coordinate{}, errors.New("quota exceeded")
}

func TestHaversineKnownDistance(t *testing.T) {
	assert.InDelta(t, 325, HaversineKm(seoul, busan), 15)
	assert.Zero(t, HaversineKm(seoul, seoul))
}
