package services

import (
	"errors"
	"testing"
	"time"

	kafkamocks "bank-fraud-pipeline/internal/kafka/mocks"
	"bank-fraud-pipeline/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitTransaction_Success(t *testing.T) {
	mockProducer := new(kafkamocks.MockProducer)
	service := NewTransactionService(mockProducer)

	var sent *models.Transaction
	mockProducer.On("SendTransaction", mock.AnythingOfType("*models.Transaction")).
		Run(func(args mock.Arguments) {
			sent = args.Get(0).(*models.Transaction)
		}).Return(nil)

	req := &models.SubmitTransactionRequest{
		AccountID:       "ACC123456",
		BankID:          "alpha-bank",
		Amount:          250.5,
		TransactionType: "purchase",
		GeoRegion:       "US",
		LoginStatus:     models.LoginStatusSuccess,
	}

	resp, err := service.SubmitTransaction(req)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "queued", resp.Status)
	assert.NotEmpty(t, resp.TransactionID)

	// transaction_id назначается сервисом и является валидным UUID
	_, err = uuid.Parse(resp.TransactionID)
	assert.NoError(t, err)

	require.NotNil(t, sent)
	assert.Equal(t, resp.TransactionID, sent.TransactionID)
	assert.Equal(t, "ACC123456", sent.AccountID)
	assert.Equal(t, "alpha-bank", sent.BankID)
	assert.Equal(t, 250.5, sent.Amount)
	assert.WithinDuration(t, time.Now().UTC(), sent.ReceivedAt, time.Minute)

	mockProducer.AssertExpectations(t)
}

func TestSubmitTransaction_DefaultBankID(t *testing.T) {
	mockProducer := new(kafkamocks.MockProducer)
	service := NewTransactionService(mockProducer)

	var sent *models.Transaction
	mockProducer.On("SendTransaction", mock.AnythingOfType("*models.Transaction")).
		Run(func(args mock.Arguments) {
			sent = args.Get(0).(*models.Transaction)
		}).Return(nil)

	req := &models.SubmitTransactionRequest{
		AccountID: "ACC123456",
		Amount:    100,
	}

	_, err := service.SubmitTransaction(req)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultBankID, sent.BankID)
}

func TestSubmitTransaction_ProducerError(t *testing.T) {
	mockProducer := new(kafkamocks.MockProducer)
	service := NewTransactionService(mockProducer)

	mockProducer.On("SendTransaction", mock.AnythingOfType("*models.Transaction")).
		Return(errors.New("broker unavailable"))

	req := &models.SubmitTransactionRequest{
		AccountID: "ACC123456",
		Amount:    100,
	}

	resp, err := service.SubmitTransaction(req)
	require.Error(t, err)
	assert.Nil(t, resp)
}

func TestSubmitTransaction_UniqueIDs(t *testing.T) {
	mockProducer := new(kafkamocks.MockProducer)
	service := NewTransactionService(mockProducer)

	mockProducer.On("SendTransaction", mock.AnythingOfType("*models.Transaction")).Return(nil)

	req := &models.SubmitTransactionRequest{AccountID: "ACC123456", Amount: 100}

	first, err := service.SubmitTransaction(req)
	require.NoError(t, err)
	second, err := service.SubmitTransaction(req)
	require.NoError(t, err)

	assert.NotEqual(t, first.TransactionID, second.TransactionID)
}
