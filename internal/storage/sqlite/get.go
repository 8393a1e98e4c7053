package sqlite

import (
	"context"
	"database/sql"

	"bank-fraud-pipeline/internal/models"
)

// GetFlaggedTransaction получает помеченную транзакцию по transaction_id
func (s *SQLiteStorage) GetFlaggedTransaction(ctx context.Context, transactionID string) (*models.FlaggedTransaction, error) {
	query := `
		SELECT id, bank_id, transaction_id, account_id, amount,
		       transaction_type, status, reason, flagged_at, created_at
		FROM flagged_transactions
		WHERE transaction_id = ?
		LIMIT 1
	`

	var ft models.FlaggedTransaction
	err := s.DB.QueryRowContext(ctx, query, transactionID).Scan(
		&ft.ID, &ft.BankID, &ft.TransactionID, &ft.AccountID, &ft.Amount,
		&ft.TransactionType, &ft.Status, &ft.Reason, &ft.FlaggedAt, &ft.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &ft, nil
}

// GetRecentFlagged получает последние помеченные транзакции
func (s *SQLiteStorage) GetRecentFlagged(ctx context.Context, limit int) ([]*models.FlaggedTransaction, error) {
	query := `
		SELECT id, bank_id, transaction_id, account_id, amount,
		       transaction_type, status, reason, flagged_at, created_at
		FROM flagged_transactions
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.FlaggedTransaction
	for rows.Next() {
		var ft models.FlaggedTransaction
		err := rows.Scan(
			&ft.ID, &ft.BankID, &ft.TransactionID, &ft.AccountID, &ft.Amount,
			&ft.TransactionType, &ft.Status, &ft.Reason, &ft.FlaggedAt, &ft.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, &ft)
	}

	return transactions, rows.Err()
}
