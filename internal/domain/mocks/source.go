package mocks

import (
	"context"

	"github.com/robotcarousel/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSource[R any] struct {
	mock.Mock
}

var _ domain.RecordSource[domain.Post] = (*MockSource[domain.Post])(nil)

func (m *MockSource[R]) Fetch(ctx context.Context) ([]R, error) {
	args := m.Called(ctx)

	// Handle nil records
	var records []R
	if args.Get(0) != nil {
		records = args.Get(0).([]R)
	}
	return records, args.Error(1)
}

func (m *MockSource[R]) Name() string {
	return "mock"
}
