package mocks

import (
	"context"

	"bank-fraud-pipeline/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockTransactionService является моком для services.TransactionService
type MockTransactionService struct {
	mock.Mock
}

// SubmitTransaction мок для SubmitTransaction
func (m *MockTransactionService) SubmitTransaction(req *models.SubmitTransactionRequest) (*models.SubmitTransactionResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubmitTransactionResponse), args.Error(1)
}

// MockRuleEvaluator является моком для services.RuleEvaluator
type MockRuleEvaluator struct {
	mock.Mock
}

// Evaluate мок для Evaluate
func (m *MockRuleEvaluator) Evaluate(ctx context.Context, tx *models.Transaction, stats *models.AccountStats) *models.Verdict {
	args := m.Called(ctx, tx, stats)
	return args.Get(0).(*models.Verdict)
}
