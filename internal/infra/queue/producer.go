package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/robotcarousel/internal/domain"
	"github.com/segmentio/kafka-go"
)

// KafkaPublisher publishes view events. Writes are asynchronous so that a slow
// broker never holds up a page render.
type KafkaPublisher struct {
	writer *kafka.Writer
}

var (
	_ domain.EventPublisher = (*KafkaPublisher)(nil)
	_ domain.EventPublisher = DiscardPublisher{}
)

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // Hash balancer keeps one view's events on one partition
		Async:        true,
		BatchTimeout: 50 * time.Millisecond,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				slog.Error("Failed to write view events to kafka", "count", len(messages), "error", err)
			}
		},
	}
	slog.Info("Kafka Publisher initialized", "brokers", brokers, "topic", topic)
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event domain.ViewEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.ViewID),
		Value: payload,
		Time:  event.At,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		slog.Error("Failed to write to kafka", "error", err)
		return err
	}

	slog.Debug("Published view event", "view_id", event.ViewID, "type", event.Type)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// DiscardPublisher drops every event. Used when no brokers are configured.
type DiscardPublisher struct{}

func NewDiscardPublisher() DiscardPublisher {
	return DiscardPublisher{}
}

func (DiscardPublisher) Publish(context.Context, domain.ViewEvent) error { return nil }

func (DiscardPublisher) Close() error { return nil }
