package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/robotcarousel/internal/domain"
	"github.com/robotcarousel/internal/infra/transformer"
	"github.com/sony/gobreaker"
)

// RESTSource loads all records with a single GET. It never retries; the
// circuit breaker only makes repeated mounts fail fast while the upstream is down.
type RESTSource[R any] struct {
	name        string
	url         string
	client      *http.Client
	transformer transformer.Transformer[R]
	cb          *gobreaker.CircuitBreaker
}

func NewRESTSource[R any](name, url string, tr transformer.Transformer[R], timeout time.Duration) *RESTSource[R] {
	cbSettings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Trip if we have 3 consecutive failures
			return counts.ConsecutiveFailures >= 3
		},
		IsSuccessful: func(err error) bool {
			// A body that does not decode is not an outage
			return err == nil || errors.Is(err, domain.ErrDecode)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("CircuitBreaker state changed", "name", name, "from", from, "to", to)
		},
	}

	return &RESTSource[R]{
		name: name,
		url:  url,
		client: &http.Client{
			Timeout: timeout,
		},
		transformer: tr,
		cb:          gobreaker.NewCircuitBreaker(cbSettings),
	}
}

func (s *RESTSource[R]) Name() string {
	return s.name
}

func (s *RESTSource[R]) Fetch(ctx context.Context) ([]R, error) {
	result, err := s.cb.Execute(func() (interface{}, error) {
		return s.fetch(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, domain.NewNetworkError(0, fmt.Errorf("%s: %w", s.name, err))
		}
		return nil, err
	}
	return result.([]R), nil
}

func (s *RESTSource[R]) fetch(ctx context.Context) ([]R, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, domain.NewNetworkError(0, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Warn("Request failed", "source", s.name, "error", err)
		return nil, domain.NewNetworkError(0, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("Failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("Upstream returned error status", "source", s.name, "status_code", resp.StatusCode)
		return nil, domain.NewNetworkError(resp.StatusCode, nil)
	}

	records, err := s.transformer.Transform(resp.Body)
	if err != nil {
		return nil, domain.NewDecodeError(err)
	}

	slog.Debug("Fetched records", "source", s.name, "count", len(records))
	return records, nil
}
