package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	kafkamocks "bank-fraud-pipeline/internal/kafka/mocks"
	"bank-fraud-pipeline/internal/models"
	storagemocks "bank-fraud-pipeline/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func flaggedTransaction() *models.Transaction {
	return &models.Transaction{
		TransactionID:   "TXN-001",
		AccountID:       "ACC123456",
		BankID:          "alpha-bank",
		Amount:          7500.0,
		TransactionType: "withdrawal",
		ReceivedAt:      time.Now().UTC(),
	}
}

func TestDispatch_AllEffects(t *testing.T) {
	mockRepo := new(storagemocks.MockFlaggedTransactionRepository)
	mockProducer := new(kafkamocks.MockProducer)
	dispatcher := NewDispatcher(mockRepo, mockProducer)

	tx := flaggedTransaction()
	verdict := models.Flagged(models.ReasonLargeWithdrawal)

	mockRepo.On("SaveFlaggedTransaction", mock.Anything, tx, verdict, mock.AnythingOfType("time.Time")).Return(nil)
	mockProducer.On("SendAlert", mock.AnythingOfType("*models.AlertMessage")).Return(nil)
	mockProducer.On("SendAnalyticsRecord", mock.AnythingOfType("*models.AnalyticsRecord")).Return(nil)

	dispatcher.Dispatch(context.Background(), tx, verdict)

	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestDispatch_SaveFailure_DoesNotStopOthers(t *testing.T) {
	mockRepo := new(storagemocks.MockFlaggedTransactionRepository)
	mockProducer := new(kafkamocks.MockProducer)
	dispatcher := NewDispatcher(mockRepo, mockProducer)

	tx := flaggedTransaction()
	verdict := models.Flagged(models.ReasonGeoMismatch)

	// Отказ записи в БД не отменяет алерт и аналитику
	mockRepo.On("SaveFlaggedTransaction", mock.Anything, tx, verdict, mock.AnythingOfType("time.Time")).
		Return(errors.New("database locked"))
	mockProducer.On("SendAlert", mock.AnythingOfType("*models.AlertMessage")).Return(nil)
	mockProducer.On("SendAnalyticsRecord", mock.AnythingOfType("*models.AnalyticsRecord")).Return(nil)

	dispatcher.Dispatch(context.Background(), tx, verdict)

	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestDispatch_AlertFailure_DoesNotStopAnalytics(t *testing.T) {
	mockRepo := new(storagemocks.MockFlaggedTransactionRepository)
	mockProducer := new(kafkamocks.MockProducer)
	dispatcher := NewDispatcher(mockRepo, mockProducer)

	tx := flaggedTransaction()
	verdict := models.Flagged(models.ReasonTooManyFailedLogins)

	mockRepo.On("SaveFlaggedTransaction", mock.Anything, tx, verdict, mock.AnythingOfType("time.Time")).Return(nil)
	mockProducer.On("SendAlert", mock.AnythingOfType("*models.AlertMessage")).
		Return(errors.New("broker unavailable"))
	mockProducer.On("SendAnalyticsRecord", mock.AnythingOfType("*models.AnalyticsRecord")).Return(nil)

	dispatcher.Dispatch(context.Background(), tx, verdict)

	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestDispatch_AlertContent(t *testing.T) {
	mockRepo := new(storagemocks.MockFlaggedTransactionRepository)
	mockProducer := new(kafkamocks.MockProducer)
	dispatcher := NewDispatcher(mockRepo, mockProducer)

	tx := flaggedTransaction()
	verdict := models.Flagged(models.ReasonLargeWithdrawal)

	var capturedAlert *models.AlertMessage
	var capturedRecord *models.AnalyticsRecord

	mockRepo.On("SaveFlaggedTransaction", mock.Anything, tx, verdict, mock.AnythingOfType("time.Time")).Return(nil)
	mockProducer.On("SendAlert", mock.AnythingOfType("*models.AlertMessage")).
		Run(func(args mock.Arguments) {
			capturedAlert = args.Get(0).(*models.AlertMessage)
		}).Return(nil)
	mockProducer.On("SendAnalyticsRecord", mock.AnythingOfType("*models.AnalyticsRecord")).
		Run(func(args mock.Arguments) {
			capturedRecord = args.Get(0).(*models.AnalyticsRecord)
		}).Return(nil)

	dispatcher.Dispatch(context.Background(), tx, verdict)

	assert.Equal(t, "Fraud Alert Detected", capturedAlert.Subject)
	assert.Equal(t, "ACC123456", capturedAlert.AccountID)
	assert.Equal(t, "TXN-001", capturedAlert.TransactionID)
	assert.Equal(t, string(models.ReasonLargeWithdrawal), capturedAlert.Reason)
	assert.Contains(t, capturedAlert.Message, "Flagged Transaction:")
	assert.Contains(t, capturedAlert.Message, "Account: ACC123456")
	assert.Contains(t, capturedAlert.Message, "Reason: LARGE_WITHDRAWAL")

	assert.True(t, capturedRecord.Flagged)
	assert.Equal(t, models.ReasonLargeWithdrawal, capturedRecord.Reason)
	assert.Equal(t, "TXN-001", capturedRecord.TransactionID)
	assert.NotEmpty(t, capturedRecord.Timestamp)
}
