package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockWordClient is a mock implementation of wordapi.ClientInterface
type MockWordClient struct {
	mock.Mock
}

func (m *MockWordClient) FetchSolution(ctx context.Context, date string) (string, error) {
	args := m.Called(ctx, date)
	return args.String(0), args.Error(1)
}
