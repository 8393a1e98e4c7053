package sqlite

import (
	"context"
	"time"

	"bank-fraud-pipeline/internal/models"
)

// SaveFlaggedTransaction сохраняет помеченную транзакцию со статусом flagged.
// ON CONFLICT DO NOTHING делает запись идемпотентной по (bank_id, transaction_id):
// повторная обработка того же сообщения не создает второй логической записи.
func (s *SQLiteStorage) SaveFlaggedTransaction(ctx context.Context, tx *models.Transaction, verdict *models.Verdict, flaggedAt time.Time) error {
	query := `
		INSERT INTO flagged_transactions (
			bank_id, transaction_id, account_id, amount,
			transaction_type, status, reason, flagged_at
		) VALUES (?, ?, ?, ?, ?, 'flagged', ?, ?)
		ON CONFLICT (bank_id, transaction_id) DO NOTHING
	`

	return retryOperation(func() error {
		_, err := s.DB.ExecContext(
			ctx, query,
			tx.BankID, tx.TransactionID, tx.AccountID, tx.Amount,
			tx.TransactionType, string(verdict.Reason), flaggedAt,
		)
		return err
	}, 3, 50*time.Millisecond)
}
