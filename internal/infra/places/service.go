package places

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/robotcarousel/internal/domain"
)

// Status is the status string reported by the places service.
type Status string

const (
	StatusOK          Status = "OK"
	StatusZeroResults Status = "ZERO_RESULTS"
)

// LatLng is a geographic point.
type LatLng struct {
	Lat float64
	Lng float64
}

// NearbyRequest holds the nearby search parameters.
type NearbyRequest struct {
	Location LatLng
	Radius   int
	Type     string
}

// Result is one place as the provider reports it.
type Result struct {
	PlaceID  string   `json:"place_id"`
	Name     string   `json:"name"`
	Vicinity string   `json:"vicinity"`
	Rating   *float64 `json:"rating,omitempty"`
}

type nearbyResponse struct {
	Status       Status   `json:"status"`
	Results      []Result `json:"results"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

// SearchCallback receives the outcome of a nearby search. err is set for
// transport and decode failures; otherwise status carries the service verdict.
type SearchCallback func(results []Result, status Status, err error)

// Service is a callback-style client for the places nearby search.
type Service struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewService(baseURL, apiKey string, client *http.Client) *Service {
	if client == nil {
		client = http.DefaultClient
	}
	return &Service{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
	}
}

// NearbySearch runs the search in the background and invokes cb exactly once.
func (s *Service) NearbySearch(ctx context.Context, req NearbyRequest, cb SearchCallback) {
	go func() {
		results, status, err := s.search(ctx, req)
		cb(results, status, err)
	}()
}

func (s *Service) search(ctx context.Context, nr NearbyRequest) ([]Result, Status, error) {
	q := url.Values{}
	q.Set("location", strconv.FormatFloat(nr.Location.Lat, 'f', -1, 64)+","+strconv.FormatFloat(nr.Location.Lng, 'f', -1, 64))
	q.Set("radius", strconv.Itoa(nr.Radius))
	q.Set("type", nr.Type)
	q.Set("key", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/maps/api/place/nearbysearch/json?"+q.Encode(), nil)
	if err != nil {
		return nil, "", domain.NewNetworkError(0, fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, "", domain.NewNetworkError(0, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("Failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, "", domain.NewNetworkError(resp.StatusCode, nil)
	}

	var body nearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, "", domain.NewDecodeError(err)
	}
	if body.ErrorMessage != "" {
		slog.Warn("Places service reported an error", "status", body.Status, "message", body.ErrorMessage)
	}
	return body.Results, body.Status, nil
}
