package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/robotcarousel/internal/domain"
	"github.com/robotcarousel/internal/infra/queue"
	"github.com/robotcarousel/pkg/config"
	"github.com/robotcarousel/pkg/logging"
)

// event-tail follows the view event topic and logs every event.
func main() {
	cfg := config.Load()
	slog.SetDefault(logging.NewLogger(os.Stdout, cfg.LogLevel))

	if err := run(cfg); err != nil {
		slog.Error("Event tail stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if !cfg.EventsEnabled() {
		return errors.New("KAFKA_BROKERS not configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := queue.NewKafkaConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, "carousel-event-tail")
	defer func() {
		if err := consumer.Close(); err != nil {
			slog.Warn("Failed to close consumer", "error", err)
		}
	}()

	return consumer.Start(ctx, func(_ context.Context, e domain.ViewEvent) error {
		slog.Info("View event",
			"view_id", e.ViewID,
			"component", e.Component,
			"type", e.Type,
			"index", e.Index,
			"page", e.Page,
			"total_pages", e.TotalPages,
			"status", e.Status,
			"error", e.Error,
			"at", e.At,
		)
		return nil
	})
}
