package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/wordull/internal/repository"
)

// MockRecordStore is a mock implementation of repository.RecordStore
type MockRecordStore struct {
	mock.Mock
}

func (m *MockRecordStore) Load(ctx context.Context, kind repository.Kind) ([]byte, bool, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockRecordStore) Save(ctx context.Context, kind repository.Kind, data []byte) error {
	args := m.Called(ctx, kind, data)
	return args.Error(0)
}
