package dispatch

import (
	"context"
	"fmt"
	"log"
	"time"

	"bank-fraud-pipeline/internal/kafka"
	"bank-fraud-pipeline/internal/logger"
	"bank-fraud-pipeline/internal/models"
	"bank-fraud-pipeline/internal/storage"
)

// Dispatcher выполняет побочные эффекты для помеченной транзакции:
// идемпотентную запись в БД, публикацию алерта и выгрузку в аналитику.
// Эффекты независимы: отказ одного не отменяет попытки остальных,
// все ошибки логируются и не приводят к повторной доставке сообщения.
type Dispatcher struct {
	repo     storage.FlaggedTransactionRepository
	producer kafka.Producer
}

func NewDispatcher(repo storage.FlaggedTransactionRepository, producer kafka.Producer) *Dispatcher {
	return &Dispatcher{
		repo:     repo,
		producer: producer,
	}
}

// Dispatch выполняет все три эффекта для помеченной транзакции
func (d *Dispatcher) Dispatch(ctx context.Context, tx *models.Transaction, verdict *models.Verdict) {
	flaggedAt := time.Now().UTC()
	timestamp := flaggedAt.Format(time.RFC3339)

	// 1. Идемпотентная запись помеченной транзакции
	if err := d.repo.SaveFlaggedTransaction(ctx, tx, verdict, flaggedAt); err != nil {
		log.Printf("Failed to save flagged transaction %s (account %s): %v", tx.TransactionID, tx.AccountID, err)
		logger.LogEvent(logger.EventDispatchFailed, "fraud-detection-service", "sqlite", map[string]interface{}{
			"transaction_id": tx.TransactionID,
			"account_id":     tx.AccountID,
			"step":           "save_flagged",
			"error":          err.Error(),
		})
	} else {
		logger.LogEvent(logger.EventFlaggedSaved, "fraud-detection-service", "sqlite", map[string]interface{}{
			"transaction_id": tx.TransactionID,
			"bank_id":        tx.BankID,
			"reason":         string(verdict.Reason),
		})
	}

	// 2. Публикация человекочитаемого алерта
	alert := buildAlert(tx, verdict, timestamp)
	if err := d.producer.SendAlert(alert); err != nil {
		log.Printf("Failed to publish alert for transaction %s (account %s): %v", tx.TransactionID, tx.AccountID, err)
		logger.LogEvent(logger.EventDispatchFailed, "fraud-detection-service", "kafka", map[string]interface{}{
			"transaction_id": tx.TransactionID,
			"account_id":     tx.AccountID,
			"step":           "publish_alert",
			"error":          err.Error(),
		})
	} else {
		logger.LogEvent(logger.EventAlertPublished, "fraud-detection-service", "kafka", map[string]interface{}{
			"transaction_id": tx.TransactionID,
			"reason":         string(verdict.Reason),
		})
	}

	// 3. Выгрузка обогащенной записи в аналитический сток
	record := &models.AnalyticsRecord{
		Transaction: *tx,
		Flagged:     verdict.Flagged,
		Reason:      verdict.Reason,
		Timestamp:   timestamp,
	}
	if err := d.producer.SendAnalyticsRecord(record); err != nil {
		log.Printf("Failed to export analytics record for transaction %s (account %s): %v", tx.TransactionID, tx.AccountID, err)
		logger.LogEvent(logger.EventDispatchFailed, "fraud-detection-service", "kafka", map[string]interface{}{
			"transaction_id": tx.TransactionID,
			"account_id":     tx.AccountID,
			"step":           "export_analytics",
			"error":          err.Error(),
		})
	} else {
		logger.LogEvent(logger.EventAnalyticsExported, "fraud-detection-service", "kafka", map[string]interface{}{
			"transaction_id": tx.TransactionID,
		})
	}
}

// buildAlert формирует текст оповещения для топика алертов
func buildAlert(tx *models.Transaction, verdict *models.Verdict, timestamp string) *models.AlertMessage {
	message := fmt.Sprintf(
		"Flagged Transaction:\nAccount: %s\nBank: %s\nAmount: %.2f\nType: %s\nID: %s\nTimestamp: %s\nReason: %s",
		tx.AccountID, tx.BankID, tx.Amount, tx.TransactionType, tx.TransactionID, timestamp, verdict.Reason,
	)
	return &models.AlertMessage{
		Subject:       "Fraud Alert Detected",
		Message:       message,
		AccountID:     tx.AccountID,
		TransactionID: tx.TransactionID,
		Reason:        string(verdict.Reason),
		Timestamp:     timestamp,
	}
}
