package sqlite

import (
	"context"
	"time"

	"bank-fraud-pipeline/internal/models"
	"bank-fraud-pipeline/internal/storage"
)

// Repository реализует интерфейс FlaggedTransactionRepository для SQLite
type Repository struct {
	storage *SQLiteStorage
}

// NewRepository создает новый репозиторий SQLite
func NewRepository(storage *SQLiteStorage) storage.FlaggedTransactionRepository {
	return &Repository{storage: storage}
}

// SaveFlaggedTransaction идемпотентно сохраняет помеченную транзакцию
func (r *Repository) SaveFlaggedTransaction(ctx context.Context, tx *models.Transaction, verdict *models.Verdict, flaggedAt time.Time) error {
	return r.storage.SaveFlaggedTransaction(ctx, tx, verdict, flaggedAt)
}

// GetFlaggedTransaction получает запись по transaction_id
func (r *Repository) GetFlaggedTransaction(ctx context.Context, transactionID string) (*models.FlaggedTransaction, error) {
	return r.storage.GetFlaggedTransaction(ctx, transactionID)
}

// GetRecentFlagged возвращает последние помеченные транзакции
func (r *Repository) GetRecentFlagged(ctx context.Context, limit int) ([]*models.FlaggedTransaction, error) {
	return r.storage.GetRecentFlagged(ctx, limit)
}

// ClearFlaggedTransactions удаляет все помеченные транзакции
func (r *Repository) ClearFlaggedTransactions(ctx context.Context) error {
	return r.storage.ClearFlaggedTransactions(ctx)
}
