package services

import (
	"context"

	"bank-fraud-pipeline/internal/models"
)

// TransactionService определяет интерфейс приема транзакций на стороне gateway
type TransactionService interface {
	// SubmitTransaction назначает transaction_id и ставит транзакцию в очередь
	SubmitTransaction(req *models.SubmitTransactionRequest) (*models.SubmitTransactionResponse, error)
}

// RuleEvaluator определяет интерфейс оценки транзакции по правилам.
// stats содержит снимок агрегатов счета после учета текущей транзакции;
// nil означает, что обновление статистики не удалось.
type RuleEvaluator interface {
	Evaluate(ctx context.Context, tx *models.Transaction, stats *models.AccountStats) *models.Verdict
}

// TransactionProcessor определяет интерфейс обработки сообщения очереди
type TransactionProcessor interface {
	// ProcessMessage обрабатывает одно сырое сообщение очереди.
	// Всегда возвращает nil для некорректных сообщений: они отбрасываются,
	// а не доставляются повторно.
	ProcessMessage(ctx context.Context, raw []byte) error
}
