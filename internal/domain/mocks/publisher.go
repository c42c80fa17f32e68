package mocks

import (
	"context"
	"sync"

	"github.com/robotcarousel/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockPublisher records every published event in addition to the testify expectations.
type MockPublisher struct {
	mock.Mock

	mu     sync.Mutex
	events []domain.ViewEvent
}

var _ domain.EventPublisher = (*MockPublisher)(nil)

func (m *MockPublisher) Publish(ctx context.Context, event domain.ViewEvent) error {
	m.mu.Lock()
	m.events = append(m.events, event)
	m.mu.Unlock()

	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// Types returns the types of the published events in order.
func (m *MockPublisher) Types() []domain.EventType {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]domain.EventType, len(m.events))
	for i, e := range m.events {
		types[i] = e.Type
	}
	return types
}
