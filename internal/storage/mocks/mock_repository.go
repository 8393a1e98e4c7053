package mocks

import (
	"context"
	"time"

	"bank-fraud-pipeline/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockFlaggedTransactionRepository является моком для storage.FlaggedTransactionRepository
type MockFlaggedTransactionRepository struct {
	mock.Mock
}

// SaveFlaggedTransaction мок для SaveFlaggedTransaction
func (m *MockFlaggedTransactionRepository) SaveFlaggedTransaction(ctx context.Context, tx *models.Transaction, verdict *models.Verdict, flaggedAt time.Time) error {
	args := m.Called(ctx, tx, verdict, flaggedAt)
	return args.Error(0)
}

// GetFlaggedTransaction мок для GetFlaggedTransaction
func (m *MockFlaggedTransactionRepository) GetFlaggedTransaction(ctx context.Context, transactionID string) (*models.FlaggedTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FlaggedTransaction), args.Error(1)
}

// GetRecentFlagged мок для GetRecentFlagged
func (m *MockFlaggedTransactionRepository) GetRecentFlagged(ctx context.Context, limit int) ([]*models.FlaggedTransaction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FlaggedTransaction), args.Error(1)
}

// ClearFlaggedTransactions мок для ClearFlaggedTransactions
func (m *MockFlaggedTransactionRepository) ClearFlaggedTransactions(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
