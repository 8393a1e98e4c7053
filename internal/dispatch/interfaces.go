package dispatch

import (
	"context"

	"bank-fraud-pipeline/internal/models"
)

// TransactionDispatcher определяет интерфейс fan-out для помеченных транзакций
type TransactionDispatcher interface {
	// Dispatch выполняет побочные эффекты для помеченной транзакции
	Dispatch(ctx context.Context, tx *models.Transaction, verdict *models.Verdict)
}

// Убеждаемся, что Dispatcher реализует TransactionDispatcher
var _ TransactionDispatcher = (*Dispatcher)(nil)
