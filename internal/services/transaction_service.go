package services

import (
	"time"

	"github.com/google/uuid"

	"bank-fraud-pipeline/internal/kafka"
	"bank-fraud-pipeline/internal/logger"
	"bank-fraud-pipeline/internal/models"
)

// TransactionServiceImpl реализует интерфейс TransactionService
type TransactionServiceImpl struct {
	producer kafka.Producer
}

// NewTransactionService создает новый сервис приема транзакций
func NewTransactionService(producer kafka.Producer) TransactionService {
	return &TransactionServiceImpl{
		producer: producer,
	}
}

// SubmitTransaction назначает транзакции идентификатор и время приема
// и ставит её в очередь на асинхронную оценку
func (s *TransactionServiceImpl) SubmitTransaction(req *models.SubmitTransactionRequest) (*models.SubmitTransactionResponse, error) {
	bankID := req.BankID
	if bankID == "" {
		bankID = models.DefaultBankID
	}

	tx := &models.Transaction{
		TransactionID:   uuid.New().String(),
		AccountID:       req.AccountID,
		BankID:          bankID,
		Amount:          req.Amount,
		TransactionType: req.TransactionType,
		GeoRegion:       req.GeoRegion,
		LoginStatus:     req.LoginStatus,
		ReceivedAt:      time.Now().UTC(),
	}

	if err := s.producer.SendTransaction(tx); err != nil {
		return nil, err
	}

	logger.LogEvent(logger.EventKafkaSent, "ingestion-service", "kafka", map[string]interface{}{
		"transaction_id": tx.TransactionID,
		"account_id":     tx.AccountID,
		"amount":         tx.Amount,
	})

	return &models.SubmitTransactionResponse{
		Status:        "queued",
		TransactionID: tx.TransactionID,
	}, nil
}
