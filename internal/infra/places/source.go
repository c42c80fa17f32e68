// Package places loads nearby restaurants from the maps places service.
//
// The service API is callback based and requires the maps API bootstrap to
// have loaded first. Source hides both behind domain.RecordSource.
package places

import (
	"context"

	"github.com/robotcarousel/internal/domain"
)

// Fixed search parameters. They are not exposed as inputs.
var (
	SearchCenter = LatLng{Lat: 37.7749, Lng: -122.4194}
)

const (
	SearchRadius = 1500
	SearchType   = "restaurant"
)

type Source struct {
	bootstrap *Bootstrap
	service   *Service
}

func NewSource(bootstrap *Bootstrap, service *Service) *Source {
	return &Source{
		bootstrap: bootstrap,
		service:   service,
	}
}

func (s *Source) Name() string {
	return "places"
}

func (s *Source) Fetch(ctx context.Context) ([]domain.Place, error) {
	if err := s.bootstrap.EnsureLoaded(ctx); err != nil {
		return nil, err
	}

	type outcome struct {
		results []Result
		status  Status
		err     error
	}
	ch := make(chan outcome, 1)

	req := NearbyRequest{
		Location: SearchCenter,
		Radius:   SearchRadius,
		Type:     SearchType,
	}
	s.service.NearbySearch(ctx, req, func(results []Result, status Status, err error) {
		ch <- outcome{results: results, status: status, err: err}
	})

	var out outcome
	select {
	case out = <-ch:
	case <-ctx.Done():
		return nil, domain.NewNetworkError(0, ctx.Err())
	}

	if out.err != nil {
		return nil, out.err
	}
	if out.status != StatusOK {
		return nil, domain.NewServiceError(string(out.status))
	}

	places := make([]domain.Place, 0, len(out.results))
	for _, r := range out.results {
		places = append(places, domain.Place{
			PlaceID: r.PlaceID,
			Name:    r.Name,
			Address: r.Vicinity,
			Rating:  r.Rating,
		})
	}
	return places, nil
}
