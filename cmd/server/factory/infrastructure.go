// Package factory provides dependency injection constructors for infrastructure components.
package factory

import (
	"context"
	"errors"
	"net/http"

	"github.com/robotcarousel/internal/domain"
	"github.com/robotcarousel/internal/infra/places"
	"github.com/robotcarousel/internal/infra/queue"
	"github.com/robotcarousel/pkg/config"
	"go.uber.org/fx"
)

// NewEventPublisher returns a Kafka publisher when brokers are configured and
// a discarding one otherwise.
func NewEventPublisher(cfg *config.Config, lc fx.Lifecycle) (domain.EventPublisher, error) {
	if !cfg.EventsEnabled() {
		return queue.NewDiscardPublisher(), nil
	}
	if cfg.KafkaTopic == "" {
		return nil, errors.New("kafka topic not configured")
	}

	publisher := queue.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}

// NewMapsBootstrap creates the process-wide maps API bootstrap shared by every places view.
func NewMapsBootstrap(cfg *config.Config) (*places.Bootstrap, error) {
	if cfg.PlacesBaseURL == "" {
		return nil, errors.New("places base URL not configured")
	}
	return places.NewBootstrap(cfg.PlacesBaseURL, cfg.PlacesAPIKey, &http.Client{Timeout: cfg.FetchTimeout}), nil
}
