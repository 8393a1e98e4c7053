package mocks

import (
	"context"
	"time"

	"bank-fraud-pipeline/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockClientInterface является моком для redis.ClientInterface интерфейса
type MockClientInterface struct {
	mock.Mock
}

// RecordTransaction мок для RecordTransaction
func (m *MockClientInterface) RecordTransaction(ctx context.Context, accountID string, amount float64, now time.Time) (*models.AccountStats, error) {
	args := m.Called(ctx, accountID, amount, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AccountStats), args.Error(1)
}

// GetStats мок для GetStats
func (m *MockClientInterface) GetStats(ctx context.Context, accountID string) (*models.AccountStats, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AccountStats), args.Error(1)
}

// RecordEvent мок для RecordEvent
func (m *MockClientInterface) RecordEvent(ctx context.Context, event *models.ActivityEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// QueryRecent мок для QueryRecent
func (m *MockClientInterface) QueryRecent(ctx context.Context, accountID string, from, to time.Time) ([]models.ActivityEvent, error) {
	args := m.Called(ctx, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ActivityEvent), args.Error(1)
}

// ClearPipelineData мок для ClearPipelineData
func (m *MockClientInterface) ClearPipelineData() error {
	args := m.Called()
	return args.Error(0)
}

// Close мок для Close
func (m *MockClientInterface) Close() error {
	args := m.Called()
	return args.Error(0)
}
