package distance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ddlogi/quote-platform/pkg/logging"
)

const (
	defaultLocalBaseURL    = "https://dapi.kakao.com"
	defaultMobilityBaseURL = "https://apis-navi.kakaomobility.com"
)

// Geocoder resolves a free-form address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Coordinate, error)
}

// RouteClient computes the driving distance between two points.
type RouteClient interface {
	RoadDistanceKm(ctx context.Context, origin, dest Coordinate) (float64, error)
}

// KakaoClient talks to the Kakao Local and Kakao Mobility REST APIs.
type KakaoClient struct {
	restKey         string
	localBaseURL    string
	mobilityBaseURL string
	httpClient      *http.Client
	logger          *logging.Logger
}

var (
	_ Geocoder    = (*KakaoClient)(nil)
	_ RouteClient = (*KakaoClient)(nil)
)

// NewKakaoClient builds a client. Base URLs are overridable for tests.
func NewKakaoClient(restKey, localBaseURL, mobilityBaseURL string, logger *logging.Logger) *KakaoClient {
	if localBaseURL == "" {
		localBaseURL = defaultLocalBaseURL
	}
	if mobilityBaseURL == "" {
		mobilityBaseURL = defaultMobilityBaseURL
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &KakaoClient{
		restKey:         restKey,
		localBaseURL:    localBaseURL,
		mobilityBaseURL: mobilityBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Geocode resolves an address through the Kakao Local address search.
func (c *KakaoClient) Geocode(ctx context.Context, address string) (Coordinate, error) {
	if c.restKey == "" {
		return Coordinate{}, errors.New("distance: kakao rest key missing")
	}
	if address == "" {
		return Coordinate{}, ErrAddressNotFound
	}

	endpoint := fmt.Sprintf("%s/v2/local/search/address.json?query=%s",
		c.localBaseURL, url.QueryEscape(address))

	body, err := c.getJSON(ctx, endpoint)
	if err != nil {
		return Coordinate{}, err
	}

	var parsed struct {
		Documents []struct {
			X string `json:"x"`
			Y string `json:"y"`
		} `json:"documents"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Coordinate{}, fmt.Errorf("distance: failed to decode geocode response: %w", err)
	}
	if len(parsed.Documents) == 0 {
		return Coordinate{}, ErrAddressNotFound
	}

	var coord Coordinate
	if _, err := fmt.Sscanf(parsed.Documents[0].Y, "%f", &coord.Lat); err != nil {
		return Coordinate{}, fmt.Errorf("distance: bad latitude in geocode response: %w", err)
	}
	if _, err := fmt.Sscanf(parsed.Documents[0].X, "%f", &coord.Lng); err != nil {
		return Coordinate{}, fmt.Errorf("distance: bad longitude in geocode response: %w", err)
	}
	return coord, nil
}

// RoadDistanceKm asks Kakao Mobility directions for the route distance.
func (c *KakaoClient) RoadDistanceKm(ctx context.Context, origin, dest Coordinate) (float64, error) {
	if c.restKey == "" {
		return 0, errors.New("distance: kakao rest key missing")
	}

	endpoint := fmt.Sprintf("%s/v1/directions?origin=%s&destination=%s",
		c.mobilityBaseURL,
		url.QueryEscape(fmt.Sprintf("%f,%f", origin.Lng, origin.Lat)),
		url.QueryEscape(fmt.Sprintf("%f,%f", dest.Lng, dest.Lat)))

	body, err := c.getJSON(ctx, endpoint)
	if err != nil {
		return 0, err
	}

	var parsed struct {
		Routes []struct {
			Summary struct {
				Distance float64 `json:"distance"` // meters
			} `json:"summary"`
		} `json:"routes"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("distance: failed to decode directions response: %w", err)
	}
	if len(parsed.Routes) == 0 {
		return 0, fmt.Errorf("%w: no route in response", ErrProviderUnavailable)
	}
	return parsed.Routes[0].Summary.Distance / 1000, nil
}

func (c *KakaoClient) getJSON(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("distance: failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+c.restKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrProviderUnavailable, resp.StatusCode)
	}
	return body, nil
}
