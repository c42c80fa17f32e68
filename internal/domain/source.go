package domain

import "context"

// RecordSource loads the complete record set of one external source.
type RecordSource[R any] interface {
	Fetch(ctx context.Context) ([]R, error)
	Name() string
}

// EventPublisher publishes view events to a queue.
type EventPublisher interface {
	Publish(ctx context.Context, event ViewEvent) error
	Close() error
}
