package mocks

import (
	"bank-fraud-pipeline/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockProducer является моком для kafka.Producer интерфейса
type MockProducer struct {
	mock.Mock
}

// SendTransaction мок для SendTransaction
func (m *MockProducer) SendTransaction(tx *models.Transaction) error {
	args := m.Called(tx)
	return args.Error(0)
}

// SendAlert мок для SendAlert
func (m *MockProducer) SendAlert(alert *models.AlertMessage) error {
	args := m.Called(alert)
	return args.Error(0)
}

// SendAnalyticsRecord мок для SendAnalyticsRecord
func (m *MockProducer) SendAnalyticsRecord(record *models.AnalyticsRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

// Close мок для Close
func (m *MockProducer) Close() error {
	args := m.Called()
	return args.Error(0)
}
