package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/segmentio/kafka-go"
)

// ReadinessWaiter blocks startup until the event brokers can take writes.
type ReadinessWaiter struct {
	brokers  []string
	topic    string
	interval time.Duration
}

func NewReadinessWaiter(brokers []string, topic string) *ReadinessWaiter {
	return &ReadinessWaiter{
		brokers:  brokers,
		topic:    topic,
		interval: 2 * time.Second,
	}
}

// WaitForDependencies returns immediately when no brokers are configured.
func (w *ReadinessWaiter) WaitForDependencies(ctx context.Context) error {
	if len(w.brokers) == 0 {
		return nil
	}
	return w.waitForKafka(ctx)
}

func (w *ReadinessWaiter) waitForKafka(ctx context.Context) error {
	slog.Info("Waiting for Kafka...", "brokers", w.brokers, "topic", w.topic)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		err := w.checkKafka(ctx)
		if err == nil {
			slog.Info("Kafka is ready")
			return nil
		}
		slog.Warn("Kafka not ready yet", "error", err)

		select {
		case <-ctx.Done():
			return fmt.Errorf("kafka not ready: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

func (w *ReadinessWaiter) checkKafka(ctx context.Context) error {
	dialer := &net.Dialer{Timeout: 2 * time.Second}
	for _, broker := range w.brokers {
		conn, err := dialer.DialContext(ctx, "tcp", broker)
		if err != nil {
			return fmt.Errorf("failed to connect to broker %s: %w", broker, err)
		}
		_ = conn.Close()
	}

	conn, err := kafka.DialContext(ctx, "tcp", w.brokers[0])
	if err != nil {
		return fmt.Errorf("failed to dial kafka: %w", err)
	}
	defer func() {
		_ = conn.Close()
	}()

	partitions, err := conn.ReadPartitions(w.topic)
	if err != nil {
		return fmt.Errorf("failed to read partitions for topic %s: %w", w.topic, err)
	}
	if len(partitions) == 0 {
		return fmt.Errorf("topic %s has no partitions", w.topic)
	}
	return nil
}
