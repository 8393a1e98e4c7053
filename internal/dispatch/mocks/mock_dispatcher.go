package mocks

import (
	"context"

	"bank-fraud-pipeline/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockTransactionDispatcher является моком для dispatch.TransactionDispatcher
type MockTransactionDispatcher struct {
	mock.Mock
}

// Dispatch мок для Dispatch
func (m *MockTransactionDispatcher) Dispatch(ctx context.Context, tx *models.Transaction, verdict *models.Verdict) {
	m.Called(ctx, tx, verdict)
}
