package storage

import (
	"context"
	"time"

	"bank-fraud-pipeline/internal/models"
)

// FlaggedTransactionRepository определяет интерфейс хранилища помеченных транзакций
type FlaggedTransactionRepository interface {
	// SaveFlaggedTransaction идемпотентно сохраняет помеченную транзакцию.
	// Повторное сохранение той же пары (bank_id, transaction_id) не создает дубликата.
	SaveFlaggedTransaction(ctx context.Context, tx *models.Transaction, verdict *models.Verdict, flaggedAt time.Time) error

	// GetFlaggedTransaction получает запись по transaction_id; nil, если записи нет
	GetFlaggedTransaction(ctx context.Context, transactionID string) (*models.FlaggedTransaction, error)

	// GetRecentFlagged возвращает последние помеченные транзакции
	GetRecentFlagged(ctx context.Context, limit int) ([]*models.FlaggedTransaction, error)

	// ClearFlaggedTransactions удаляет все помеченные транзакции
	ClearFlaggedTransactions(ctx context.Context) error
}
