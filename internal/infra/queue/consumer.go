package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/robotcarousel/internal/domain"
	"github.com/segmentio/kafka-go"
)

type KafkaConsumer struct {
	reader *kafka.Reader
}

func NewKafkaConsumer(brokers []string, topic string, groupID string) *KafkaConsumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6, // 10MB
	})
	slog.Info("Kafka Consumer initialized", "brokers", brokers, "topic", topic, "group", groupID)
	return &KafkaConsumer{reader: r}
}

type EventHandler func(ctx context.Context, event domain.ViewEvent) error

// Start reads events until ctx is cancelled or the reader fails.
// Undecodable messages and handler errors are logged and skipped.
func (c *KafkaConsumer) Start(ctx context.Context, handler EventHandler) error {
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			slog.Error("Error reading kafka message", "error", err)
			return err
		}

		var event domain.ViewEvent
		if err := json.Unmarshal(m.Value, &event); err != nil {
			slog.Error("Error unmarshaling view event", "offset", m.Offset, "error", err)
			continue
		}

		if err := handler(ctx, event); err != nil {
			slog.Error("Error handling view event", "view_id", event.ViewID, "error", err)
		}
	}
}

func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
