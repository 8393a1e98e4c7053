package kafka

import (
	"context"

	"bank-fraud-pipeline/internal/models"
)

// Producer определяет интерфейс для отправки сообщений в Kafka
type Producer interface {
	// SendTransaction ставит транзакцию в очередь на оценку
	SendTransaction(tx *models.Transaction) error

	// SendAlert публикует оповещение в топик алертов
	SendAlert(alert *models.AlertMessage) error

	// SendAnalyticsRecord выгружает обогащенную запись в аналитический топик
	SendAnalyticsRecord(record *models.AnalyticsRecord) error

	Close() error
}

// MessageHandler обрабатывает одно сырое сообщение очереди.
// Возвращенная ошибка только логируется: сообщение подтверждается
// после попытки обработки в любом случае.
type MessageHandler func(ctx context.Context, raw []byte) error

// Consumer определяет интерфейс потребителя очереди транзакций
type Consumer interface {
	Start(ctx context.Context) error

	Close() error
}
