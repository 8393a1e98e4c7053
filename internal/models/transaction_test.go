package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransaction_Valid(t *testing.T) {
	data := []byte(`{
		"transaction_id": "TXN-001",
		"account_id": "ACC123456",
		"bank_id": "alpha-bank",
		"amount": 250.5,
		"transaction_type": "purchase",
		"geo_region": "US",
		"login_status": "success",
		"received_at": "2024-01-15T14:30:00Z"
	}`)

	tx, err := ParseTransaction(data)
	require.NoError(t, err)
	require.NotNil(t, tx)

	assert.Equal(t, "TXN-001", tx.TransactionID)
	assert.Equal(t, "ACC123456", tx.AccountID)
	assert.Equal(t, "alpha-bank", tx.BankID)
	assert.Equal(t, 250.5, tx.Amount)
	assert.Equal(t, "purchase", tx.TransactionType)
	assert.Equal(t, "US", tx.GeoRegion)
	assert.Equal(t, LoginStatusSuccess, tx.LoginStatus)
	assert.Equal(t, time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC), tx.ReceivedAt)
}

func TestParseTransaction_DefaultBankID(t *testing.T) {
	data := []byte(`{"transaction_id": "TXN-002", "account_id": "ACC123456", "amount": 100}`)

	tx, err := ParseTransaction(data)
	require.NoError(t, err)
	assert.Equal(t, DefaultBankID, tx.BankID)
}

func TestParseTransaction_MissingTransactionID(t *testing.T) {
	data := []byte(`{"account_id": "ACC123456", "amount": 100}`)

	tx, err := ParseTransaction(data)
	require.Error(t, err)
	assert.Nil(t, tx)
	assert.Contains(t, err.Error(), "transaction_id")
}

func TestParseTransaction_MissingAccountID(t *testing.T) {
	data := []byte(`{"transaction_id": "TXN-003", "amount": 100}`)

	tx, err := ParseTransaction(data)
	require.Error(t, err)
	assert.Nil(t, tx)
	assert.Contains(t, err.Error(), "account_id")
}

func TestParseTransaction_MissingAmount(t *testing.T) {
	data := []byte(`{"transaction_id": "TXN-004", "account_id": "ACC123456"}`)

	tx, err := ParseTransaction(data)
	require.Error(t, err)
	assert.Nil(t, tx)
	assert.Contains(t, err.Error(), "amount")
}

func TestParseTransaction_AmountAsString(t *testing.T) {
	// Сумма строкой вместо числа не проходит десериализацию
	data := []byte(`{"transaction_id": "TXN-005", "account_id": "ACC123456", "amount": "abc"}`)

	tx, err := ParseTransaction(data)
	require.Error(t, err)
	assert.Nil(t, tx)
}

func TestParseTransaction_NegativeAmount(t *testing.T) {
	data := []byte(`{"transaction_id": "TXN-006", "account_id": "ACC123456", "amount": -50}`)

	tx, err := ParseTransaction(data)
	require.Error(t, err)
	assert.Nil(t, tx)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestParseTransaction_ZeroAmount(t *testing.T) {
	// Нулевая сумма допустима: событие входа без денежного движения
	data := []byte(`{"transaction_id": "TXN-007", "account_id": "ACC123456", "amount": 0, "login_status": "fail"}`)

	tx, err := ParseTransaction(data)
	require.NoError(t, err)
	assert.Equal(t, 0.0, tx.Amount)
	assert.Equal(t, LoginStatusFail, tx.LoginStatus)
}

func TestParseTransaction_InvalidLoginStatus(t *testing.T) {
	data := []byte(`{"transaction_id": "TXN-008", "account_id": "ACC123456", "amount": 100, "login_status": "maybe"}`)

	tx, err := ParseTransaction(data)
	require.Error(t, err)
	assert.Nil(t, tx)
	assert.Contains(t, err.Error(), "login_status")
}

func TestParseTransaction_NotJSON(t *testing.T) {
	tx, err := ParseTransaction([]byte("not json at all"))
	require.Error(t, err)
	assert.Nil(t, tx)
}

func TestParseTransaction_InvalidReceivedAt(t *testing.T) {
	// Непарсящийся received_at заменяется временем приема
	data := []byte(`{"transaction_id": "TXN-009", "account_id": "ACC123456", "amount": 100, "received_at": "yesterday"}`)

	tx, err := ParseTransaction(data)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), tx.ReceivedAt, time.Minute)
}

func TestVerdict_Constructors(t *testing.T) {
	clean := NotFlagged()
	assert.False(t, clean.Flagged)
	assert.Equal(t, ReasonNone, clean.Reason)

	flagged := Flagged(ReasonGeoMismatch)
	assert.True(t, flagged.Flagged)
	assert.Equal(t, ReasonGeoMismatch, flagged.Reason)
}
