package factory

import (
	"context"

	"github.com/robotcarousel/internal/app"
	"github.com/robotcarousel/internal/domain"
	"github.com/robotcarousel/pkg/config"
	"github.com/robotcarousel/pkg/logging"
	"go.uber.org/fx"
)

// NewErrorSampler creates the sampler shared by all loaders.
func NewErrorSampler() *logging.ErrorSampler {
	return logging.NewErrorSampler(10)
}

// NewPostsRegistry creates the registry backing the robot carousel.
func NewPostsRegistry(
	lc fx.Lifecycle,
	cfg *config.Config,
	source domain.RecordSource[domain.Post],
	events domain.EventPublisher,
	sampler *logging.ErrorSampler,
) (*app.Registry[domain.Post], error) {
	return newRegistry(lc, cfg, "carousel", source, events, sampler)
}

// NewPlacesRegistry creates the registry backing the places table.
func NewPlacesRegistry(
	lc fx.Lifecycle,
	cfg *config.Config,
	source domain.RecordSource[domain.Place],
	events domain.EventPublisher,
	sampler *logging.ErrorSampler,
) (*app.Registry[domain.Place], error) {
	return newRegistry(lc, cfg, "places", source, events, sampler)
}

func newRegistry[R any](
	lc fx.Lifecycle,
	cfg *config.Config,
	component string,
	source domain.RecordSource[R],
	events domain.EventPublisher,
	sampler *logging.ErrorSampler,
) (*app.Registry[R], error) {
	reg, err := app.NewRegistry(app.RegistryConfig{
		Component: component,
		Items:     domain.Robots(),
		PageSize:  cfg.PageSize,
		MaxViews:  cfg.MaxViews,
	}, source, events, sampler)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			reg.Close()
			return nil
		},
	})
	return reg, nil
}
