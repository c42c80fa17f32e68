package factory

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/robotcarousel/internal/domain"
	"github.com/robotcarousel/internal/infra/places"
	"github.com/robotcarousel/internal/infra/provider"
	"github.com/robotcarousel/internal/infra/transformer"
	"github.com/robotcarousel/pkg/config"
)

// NewPostsSource creates the REST source for the carousel records.
func NewPostsSource(cfg *config.Config) (domain.RecordSource[domain.Post], error) {
	if cfg.RecordsURL == "" {
		return nil, errors.New("records URL not configured")
	}
	slog.Info("Registered source", "source", "posts", "url", cfg.RecordsURL)
	return provider.NewRESTSource("posts", cfg.RecordsURL, transformer.NewJSONArray[domain.Post](), cfg.FetchTimeout), nil
}

// NewPlacesSource creates the nearby places source.
func NewPlacesSource(cfg *config.Config, bootstrap *places.Bootstrap) (domain.RecordSource[domain.Place], error) {
	if bootstrap == nil {
		return nil, errors.New("maps bootstrap is nil")
	}
	if cfg.PlacesAPIKey == "" {
		slog.Warn("PLACES_API_KEY is empty, places requests will be denied")
	}
	service := places.NewService(cfg.PlacesBaseURL, cfg.PlacesAPIKey, &http.Client{Timeout: cfg.FetchTimeout})
	slog.Info("Registered source", "source", "places", "url", cfg.PlacesBaseURL)
	return places.NewSource(bootstrap, service), nil
}
