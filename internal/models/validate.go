package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// queueMessage представляет сырое сообщение очереди до валидации.
// Указатели нужны, чтобы отличить отсутствующее поле от нулевого значения.
type queueMessage struct {
	TransactionID   *string  `json:"transaction_id"`
	AccountID       *string  `json:"account_id"`
	BankID          string   `json:"bank_id"`
	Amount          *float64 `json:"amount"`
	TransactionType string   `json:"transaction_type"`
	GeoRegion       string   `json:"geo_region"`
	LoginStatus     string   `json:"login_status"`
	ReceivedAt      string   `json:"received_at"`
}

// ParseTransaction десериализует и валидирует сообщение очереди.
// Сообщение, не прошедшее валидацию, отбрасывается вызывающей стороной
// без повторной доставки, поэтому ошибка должна содержать причину.
func ParseTransaction(data []byte) (*Transaction, error) {
	var msg queueMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("invalid message payload: %w", err)
	}

	if msg.TransactionID == nil || *msg.TransactionID == "" {
		return nil, fmt.Errorf("missing required field transaction_id")
	}
	if msg.AccountID == nil || *msg.AccountID == "" {
		return nil, fmt.Errorf("missing required field account_id")
	}
	if msg.Amount == nil {
		return nil, fmt.Errorf("missing required field amount")
	}
	if *msg.Amount < 0 {
		return nil, fmt.Errorf("amount must be non-negative, got %f", *msg.Amount)
	}

	switch msg.LoginStatus {
	case "", LoginStatusSuccess, LoginStatusFail:
	default:
		return nil, fmt.Errorf("invalid login_status %q", msg.LoginStatus)
	}

	bankID := msg.BankID
	if bankID == "" {
		bankID = DefaultBankID
	}

	receivedAt := time.Now().UTC()
	if msg.ReceivedAt != "" {
		if parsed, err := time.Parse(time.RFC3339, msg.ReceivedAt); err == nil {
			receivedAt = parsed
		}
	}

	return &Transaction{
		TransactionID:   *msg.TransactionID,
		AccountID:       *msg.AccountID,
		BankID:          bankID,
		Amount:          *msg.Amount,
		TransactionType: msg.TransactionType,
		GeoRegion:       msg.GeoRegion,
		LoginStatus:     msg.LoginStatus,
		ReceivedAt:      receivedAt,
	}, nil
}
