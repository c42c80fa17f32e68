package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/robotcarousel/cmd/server/factory"
	"github.com/robotcarousel/internal/app"
	"github.com/robotcarousel/internal/infra/tracing"
	transport "github.com/robotcarousel/internal/transport/http"
	"github.com/robotcarousel/pkg/config"
	"github.com/robotcarousel/pkg/logging"
	"go.uber.org/fx"
)

func main() {
	cfg := config.Load()
	logger := logging.NewLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	fx.New(
		fx.Supply(cfg),
		fx.Provide(
			// Infrastructure
			factory.NewEventPublisher,
			factory.NewMapsBootstrap,
			factory.NewErrorSampler,

			// Sources
			factory.NewPostsSource,
			factory.NewPlacesSource,

			// Views
			factory.NewPostsRegistry,
			factory.NewPlacesRegistry,

			// HTTP Server
			transport.NewHTTPServer,
		),
		fx.Invoke(
			SetupTracer,
			WaitForReady, // Block until event brokers are ready
			StartServer,
		),
	).Run()
}

// --- Invokers ---

func SetupTracer(lc fx.Lifecycle, cfg *config.Config) error {
	ctx := context.Background()
	shutdown, err := tracing.InitTracer(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		slog.Error("Failed to initialize tracer", "error", err)
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Info("Shutting down tracer provider")
			return shutdown(ctx)
		},
	})
	return nil
}

// WaitForReady blocks until the event brokers are ready, if any are configured.
func WaitForReady(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ReadinessTimeout)
	defer cancel()

	waiter := app.NewReadinessWaiter(cfg.KafkaBrokers, cfg.KafkaTopic)
	return waiter.WaitForDependencies(ctx)
}

func StartServer(lc fx.Lifecycle, server *http.Server) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				slog.Info("Starting HTTP server", "address", server.Addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					slog.Error("HTTP server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}
